package products

import (
	"time"

	"github.com/pharma-erp/pharma-erp/internal/masterdata/shared"
)

// CreateProductRequest carries client-supplied fields for a new product.
// IsActive defaults to true when omitted.
type CreateProductRequest struct {
	ProdName     string     `json:"prodName" validate:"required,max=50"`
	HSNCode      *string    `json:"hsnCode,omitempty" validate:"omitempty,max=15"`
	Packing      string     `json:"packing" validate:"required,max=50"`
	PurUnit      string     `json:"purUnit" validate:"required,max=20"`
	SalUnit      string     `json:"salUnit" validate:"required,max=20"`
	ProdTypeCode int64      `json:"prodTypeCode" validate:"required,gt=0"`
	MfrCode      int64      `json:"mfrCode" validate:"required,gt=0"`
	MRP          float64    `json:"mrp" validate:"gte=0"`
	PurTaxCode   int64      `json:"purTaxCode" validate:"required,gt=0"`
	SalTaxCode   int64      `json:"salTaxCode" validate:"required,gt=0"`
	SchTypeCode  int64      `json:"schTypeCode" validate:"required,gt=0"`
	IsActive     *bool      `json:"isActive,omitempty"`
	InActiveFrom *time.Time `json:"inActiveFrom,omitempty"`
	CreatedBy    string     `json:"createdBy" validate:"required,max=50"`
}

// UpdateProductRequest is a partial patch; nil fields keep their prior values.
type UpdateProductRequest struct {
	ProdName     *string    `json:"prodName,omitempty" validate:"omitempty,max=50"`
	HSNCode      *string    `json:"hsnCode,omitempty" validate:"omitempty,max=15"`
	Packing      *string    `json:"packing,omitempty" validate:"omitempty,max=50"`
	PurUnit      *string    `json:"purUnit,omitempty" validate:"omitempty,max=20"`
	SalUnit      *string    `json:"salUnit,omitempty" validate:"omitempty,max=20"`
	ProdTypeCode *int64     `json:"prodTypeCode,omitempty" validate:"omitempty,gt=0"`
	MfrCode      *int64     `json:"mfrCode,omitempty" validate:"omitempty,gt=0"`
	MRP          *float64   `json:"mrp,omitempty" validate:"omitempty,gte=0"`
	PurTaxCode   *int64     `json:"purTaxCode,omitempty" validate:"omitempty,gt=0"`
	SalTaxCode   *int64     `json:"salTaxCode,omitempty" validate:"omitempty,gt=0"`
	SchTypeCode  *int64     `json:"schTypeCode,omitempty" validate:"omitempty,gt=0"`
	IsActive     *bool      `json:"isActive,omitempty"`
	InActiveFrom *time.Time `json:"inActiveFrom,omitempty"`
}

// ListProductsParams adds the optional active-flag filter; when nil both
// active and inactive rows are returned.
type ListProductsParams struct {
	shared.ListParams
	IsActive *bool
}
