package categories

import "time"

// Category groups generics into therapeutic families.
type Category struct {
	ProdCatCode  int64      `json:"prodCatCode"`
	ProdCatName  string     `json:"prodCatName"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
	CreatedBy    string     `json:"createdBy"`
}
