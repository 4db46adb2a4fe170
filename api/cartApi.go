package api

import (
	"context"
	"net/http"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

func (c *Client) GetCart(ctx context.Context, username string) Result[[]models.CartItem] {
	c.log.Info("Fetching cart", "username", username)
	res := execute[[]models.CartItem](c, ctx, http.MethodGet, routes.Cart(username), nil)
	if res.Success {
		c.log.Success("Fetched cart items", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch cart", "error", res.Error)
	}
	return res
}

func (c *Client) AddToCart(ctx context.Context, username string, productID int64, quantity int) Result[models.CartItem] {
	c.log.Info("Adding to cart", "username", username, "productId", productID, "quantity", quantity)

	body := struct {
		Username  string `json:"username"`
		ProductID int64  `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{username, productID, quantity}

	res := execute[models.CartItem](c, ctx, http.MethodPost, routes.CartAdd, body)
	if res.Success {
		c.log.Success("Added to cart successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to add to cart", "error", res.Error)
	}
	return res
}

func (c *Client) RemoveFromCart(ctx context.Context, cartItemID int64) Result[struct{}] {
	c.log.Info("Removing from cart", "cartItemId", cartItemID)
	res := execute[struct{}](c, ctx, http.MethodDelete, routes.CartItem(cartItemID), nil)
	if res.Success {
		c.log.Success("Removed from cart successfully")
	} else {
		c.log.Error("Failed to remove from cart", "error", res.Error)
	}
	return res
}

func (c *Client) UpdateCartQuantity(ctx context.Context, cartItemID int64, quantity int) Result[models.CartItem] {
	c.log.Info("Updating cart quantity", "cartItemId", cartItemID, "quantity", quantity)

	body := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	res := execute[models.CartItem](c, ctx, http.MethodPut, routes.CartItemQuantity(cartItemID), body)
	if res.Success {
		c.log.Success("Cart quantity updated successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to update cart quantity", "error", res.Error)
	}
	return res
}
