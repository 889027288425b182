package manufacturers

type CreateManufacturerRequest struct {
	MfrName      string  `json:"mfrName" validate:"required,max=50"`
	MfrShortName string  `json:"mfrShortName" validate:"required,max=3"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=50"`
	State        *string `json:"state,omitempty" validate:"omitempty,max=50"`
	Pin          *string `json:"pin,omitempty" validate:"omitempty,max=10"`
	CPName       *string `json:"cpName,omitempty" validate:"omitempty,max=50"`
	CPPhone      *string `json:"cpPhone,omitempty" validate:"omitempty,max=20"`
	Email        *string `json:"email,omitempty" validate:"omitempty,max=50"`
	CreatedBy    string  `json:"createdBy" validate:"required,max=50"`
}

// UpdateManufacturerRequest is a partial patch; nil fields keep their prior values.
type UpdateManufacturerRequest struct {
	MfrName      *string `json:"mfrName,omitempty" validate:"omitempty,max=50"`
	MfrShortName *string `json:"mfrShortName,omitempty" validate:"omitempty,max=3"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=50"`
	State        *string `json:"state,omitempty" validate:"omitempty,max=50"`
	Pin          *string `json:"pin,omitempty" validate:"omitempty,max=10"`
	CPName       *string `json:"cpName,omitempty" validate:"omitempty,max=50"`
	CPPhone      *string `json:"cpPhone,omitempty" validate:"omitempty,max=20"`
	Email        *string `json:"email,omitempty" validate:"omitempty,max=50"`
}
