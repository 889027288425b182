package categories

type CreateCategoryRequest struct {
	ProdCatName string `json:"prodCatName" validate:"required,max=50"`
	CreatedBy   string `json:"createdBy" validate:"required,max=50"`
}

// UpdateCategoryRequest is a partial patch; nil fields keep their prior values.
type UpdateCategoryRequest struct {
	ProdCatName *string `json:"prodCatName,omitempty" validate:"omitempty,max=50"`
}
