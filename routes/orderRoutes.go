package routes

import (
	"fmt"
	"net/url"
)

const PlaceOrder = "/orders/place"

func Orders(username string) string {
	return "/orders/" + url.PathEscape(username)
}

func OrderDetails(orderID int64) string {
	return fmt.Sprintf("/orders/details/%d", orderID)
}

func VendorOrders(username string) string {
	return "/orders/vendor/" + url.PathEscape(username)
}

func OrderStatus(orderID int64) string {
	return fmt.Sprintf("/orders/status/%d", orderID)
}
