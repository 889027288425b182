package taxes

import "time"

// Tax is a composite GST rate: interstate, central and state components.
type Tax struct {
	TaxCode      int64      `json:"taxCode"`
	TaxDesc      string     `json:"taxDesc"`
	IGST         float64    `json:"igst"`
	CGST         float64    `json:"cgst"`
	SGST         float64    `json:"sgst"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
	CreatedBy    string     `json:"createdBy"`
}
