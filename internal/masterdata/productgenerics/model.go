package productgenerics

import "time"

// ProductGeneric links a product to one of its generic compositions
// with the strength it carries in that product.
type ProductGeneric struct {
	ID              int64      `json:"id"`
	ProdCode        int64      `json:"prodCode"`
	GenericCode     int64      `json:"genericCode"`
	GenericStrength string     `json:"genericStrength"`
	CreatedDate     time.Time  `json:"createdDate"`
	ModifiedDate    *time.Time `json:"modifiedDate"`
	CreatedBy       string     `json:"createdBy"`
}
