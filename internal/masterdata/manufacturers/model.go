package manufacturers

import "time"

// Manufacturer carries an optional address bundle and contact-person bundle
// alongside the mandatory name and short code.
type Manufacturer struct {
	MfrCode      int64      `json:"mfrCode"`
	MfrName      string     `json:"mfrName"`
	MfrShortName string     `json:"mfrShortName"`
	Address      *string    `json:"address"`
	City         *string    `json:"city"`
	State        *string    `json:"state"`
	Pin          *string    `json:"pin"`
	CPName       *string    `json:"cpName"`
	CPPhone      *string    `json:"cpPhone"`
	Email        *string    `json:"email"`
	CreatedDate  time.Time  `json:"createdDate"`
	ModifiedDate *time.Time `json:"modifiedDate"`
	CreatedBy    string     `json:"createdBy"`
}
