package models

// Product mirrors the backend product entity. Pincode scopes visibility to a
// delivery zone; Vendor is populated by the backend on reads and reduced to
// a bare id reference on writes.
type Product struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Pincode     string  `json:"pincode,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Stock       int     `json:"stock"`
	Vendor      *User   `json:"vendor,omitempty"`
}
