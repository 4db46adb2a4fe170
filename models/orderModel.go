package models

const (
	OrderPlaced    = "PLACED"
	OrderConfirmed = "CONFIRMED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// OrderAddress is the delivery address snapshot embedded in an order. It may
// be absent when the order was placed without a matching address.
type OrderAddress struct {
	FullAddress string `json:"fullAddress"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
}

type Order struct {
	ID           int64         `json:"id,omitempty"`
	User         *User         `json:"user,omitempty"`
	Status       string        `json:"status,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
	TotalAmount  float64       `json:"totalAmount,omitempty"`
	OrderAddress *OrderAddress `json:"orderAddress,omitempty"`
}

type OrderItem struct {
	ID       int64    `json:"id,omitempty"`
	Product  *Product `json:"product,omitempty"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
}

// CustomerOrder is one entry of a user's order history.
type CustomerOrder struct {
	Order        Order         `json:"order"`
	OrderAddress *OrderAddress `json:"orderAddress"`
}

// OrderDetails is a single order with its line items.
type OrderDetails struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

// VendorOrder is one order as seen by the vendor whose products it contains.
type VendorOrder struct {
	Order    Order       `json:"order"`
	Items    []OrderItem `json:"items"`
	Customer *User       `json:"customer"`
}
