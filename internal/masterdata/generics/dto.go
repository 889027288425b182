package generics

import "github.com/pharma-erp/pharma-erp/internal/masterdata/shared"

type CreateGenericRequest struct {
	GenericName string `json:"genericName" validate:"required,max=50"`
	ProdCatCode *int64 `json:"prodCatCode,omitempty" validate:"omitempty,gt=0"`
	CreatedBy   string `json:"createdBy" validate:"required,max=50"`
}

// UpdateGenericRequest is a partial patch; nil fields keep their prior values.
type UpdateGenericRequest struct {
	GenericName *string `json:"genericName,omitempty" validate:"omitempty,max=50"`
	ProdCatCode *int64  `json:"prodCatCode,omitempty" validate:"omitempty,gt=0"`
}

// ListGenericsParams adds the optional category filter. Generics without a
// category never match a category-filtered listing.
type ListGenericsParams struct {
	shared.ListParams
	CategoryID *int64
}
