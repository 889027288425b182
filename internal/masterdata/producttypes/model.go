package producttypes

import "time"

// ProductType classifies products (tablet, syrup, injection and so on).
type ProductType struct {
	ProdTypeCode      int64      `json:"prodTypeCode"`
	ProdTypeName      string     `json:"prodTypeName"`
	ProdTypeShortName string     `json:"prodTypeShortName"`
	CreatedDate       time.Time  `json:"createdDate"`
	ModifiedDate      *time.Time `json:"modifiedDate"`
	CreatedBy         string     `json:"createdBy"`
}
