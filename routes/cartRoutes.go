package routes

import (
	"fmt"
	"net/url"
)

const CartAdd = "/cart/add"

func Cart(username string) string {
	return "/cart/" + url.PathEscape(username)
}

func CartItem(cartItemID int64) string {
	return fmt.Sprintf("/cart/%d", cartItemID)
}

func CartItemQuantity(cartItemID int64) string {
	return fmt.Sprintf("/cart/%d/quantity", cartItemID)
}
