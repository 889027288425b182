package scheduletypes

type CreateScheduleTypeRequest struct {
	SchTypeName string `json:"schTypeName" validate:"required,max=50"`
	CreatedBy   string `json:"createdBy" validate:"required,max=50"`
}

// UpdateScheduleTypeRequest is a partial patch; nil fields keep their prior values.
type UpdateScheduleTypeRequest struct {
	SchTypeName *string `json:"schTypeName,omitempty" validate:"omitempty,max=50"`
}
