package producttypes

type CreateProductTypeRequest struct {
	ProdTypeName      string `json:"prodTypeName" validate:"required,max=50"`
	ProdTypeShortName string `json:"prodTypeShortName" validate:"required,max=3"`
	CreatedBy         string `json:"createdBy" validate:"required,max=50"`
}

// UpdateProductTypeRequest is a partial patch; nil fields keep their prior values.
type UpdateProductTypeRequest struct {
	ProdTypeName      *string `json:"prodTypeName,omitempty" validate:"omitempty,max=50"`
	ProdTypeShortName *string `json:"prodTypeShortName,omitempty" validate:"omitempty,max=3"`
}
