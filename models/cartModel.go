package models

// CartItem is one line of a user's cart, keyed by its own id for quantity
// updates and removal.
type CartItem struct {
	ID        int64    `json:"id,omitempty"`
	Username  string   `json:"username,omitempty"`
	ProductID int64    `json:"productId,omitempty"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
}
