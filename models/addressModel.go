package models

// Address is one delivery address of a user. At most one address carries the
// default flag, maintained by the dedicated set-default endpoint.
type Address struct {
	ID          int64  `json:"id,omitempty"`
	FullAddress string `json:"fullAddress"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"isDefault"`
}
