package generics

import "time"

// Generic is a non-proprietary active-ingredient name, optionally grouped
// under a product category.
type Generic struct {
	GenericCode  int64      `json:"genericCode"`
	GenericName  string     `json:"genericName"`
	ProdCatCode  *int64     `json:"prodCatCode"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
	CreatedBy    string     `json:"createdBy"`
}
