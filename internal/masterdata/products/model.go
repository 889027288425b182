package products

import "time"

// Product is the central master-data row. Purchase and sale tax are two
// independent references that may point at the same Tax row.
type Product struct {
	ProdCode     int64      `json:"prodCode"`
	ProdName     string     `json:"prodName"`
	HSNCode      *string    `json:"hsnCode"`
	Packing      string     `json:"packing"`
	PurUnit      string     `json:"purUnit"`
	SalUnit      string     `json:"salUnit"`
	ProdTypeCode int64      `json:"prodTypeCode"`
	MfrCode      int64      `json:"mfrCode"`
	MRP          float64    `json:"mrp"`
	PurTaxCode   int64      `json:"purTaxCode"`
	SalTaxCode   int64      `json:"salTaxCode"`
	SchTypeCode  int64      `json:"schTypeCode"`
	IsActive     bool       `json:"isActive"`
	InActiveFrom *time.Time `json:"inActiveFrom"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
	CreatedBy    string     `json:"createdBy"`
}
