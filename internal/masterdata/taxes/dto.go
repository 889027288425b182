package taxes

type CreateTaxRequest struct {
	TaxDesc   string  `json:"taxDesc" validate:"required,max=50"`
	IGST      float64 `json:"igst" validate:"gte=0"`
	CGST      float64 `json:"cgst" validate:"gte=0"`
	SGST      float64 `json:"sgst" validate:"gte=0"`
	CreatedBy string  `json:"createdBy" validate:"required,max=50"`
}

// UpdateTaxRequest is a partial patch; nil fields keep their prior values.
type UpdateTaxRequest struct {
	TaxDesc *string  `json:"taxDesc,omitempty" validate:"omitempty,max=50"`
	IGST    *float64 `json:"igst,omitempty" validate:"omitempty,gte=0"`
	CGST    *float64 `json:"cgst,omitempty" validate:"omitempty,gte=0"`
	SGST    *float64 `json:"sgst,omitempty" validate:"omitempty,gte=0"`
}
