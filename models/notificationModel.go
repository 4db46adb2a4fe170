package models

// Notification is a vendor-facing event record. Only the read flag is ever
// mutated from this side, via the mark-as-read endpoint.
type Notification struct {
	ID        int64  `json:"id,omitempty"`
	VendorID  int64  `json:"vendorId,omitempty"`
	Message   string `json:"message,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}
