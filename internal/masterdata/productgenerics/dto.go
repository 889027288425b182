package productgenerics

import "github.com/pharma-erp/pharma-erp/internal/masterdata/shared"

type CreateProductGenericRequest struct {
	ProdCode        int64  `json:"prodCode" validate:"required,gt=0"`
	GenericCode     int64  `json:"genericCode" validate:"required,gt=0"`
	GenericStrength string `json:"genericStrength" validate:"required,max=50"`
	CreatedBy       string `json:"createdBy" validate:"required,max=50"`
}

type ListProductGenericsParams struct {
	shared.ListParams
	ProductID *int64
	GenericID *int64
}
