package api

import (
	"context"
	"net/http"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

// PlaceOrder places an order from the user's cart. The delivery address is
// resolved by fetching the user's address list and taking the one whose
// pincode equals selectedPincode exactly; with no pincode or no match the
// order goes out with a null address. There is deliberately no fallback to
// the default address.
func (c *Client) PlaceOrder(ctx context.Context, username, selectedPincode string) Result[models.Order] {
	c.log.Info("Placing order", "username", username, "selectedPincode", selectedPincode)

	var address *models.OrderAddress
	if addrRes := c.GetAddresses(ctx, username); addrRes.Success && len(addrRes.Data) > 0 {
		c.log.Info("Fetched addresses for order", "count", len(addrRes.Data))
		if selectedPincode == "" {
			c.log.Error("No pincode provided for order")
		} else {
			for _, a := range addrRes.Data {
				if a.Pincode == selectedPincode {
					address = &models.OrderAddress{
						FullAddress: a.FullAddress,
						Pincode:     a.Pincode,
						Phone:       a.Phone,
					}
					break
				}
			}
			if address != nil {
				c.log.Success("Found address matching selected pincode", "pincode", selectedPincode)
			} else {
				c.log.Error("No address found for selected pincode", "pincode", selectedPincode)
			}
		}
	}

	body := struct {
		Username string               `json:"username"`
		Address  *models.OrderAddress `json:"address"`
	}{username, address}

	res := execute[models.Order](c, ctx, http.MethodPost, routes.PlaceOrder, body)
	if res.Success {
		c.log.Success("Order placed successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to place order", "error", res.Error)
	}
	return res
}

func (c *Client) GetOrders(ctx context.Context, username string) Result[[]models.CustomerOrder] {
	c.log.Info("Fetching orders", "username", username)
	res := execute[[]models.CustomerOrder](c, ctx, http.MethodGet, routes.Orders(username), nil)
	if res.Success {
		c.log.Success("Fetched orders", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch orders", "error", res.Error)
	}
	return res
}

func (c *Client) GetOrderDetails(ctx context.Context, orderID int64) Result[models.OrderDetails] {
	c.log.Info("Fetching order details", "orderId", orderID)
	res := execute[models.OrderDetails](c, ctx, http.MethodGet, routes.OrderDetails(orderID), nil)
	if res.Success {
		c.log.Success("Fetched order details")
	} else {
		c.log.Error("Failed to fetch order details", "error", res.Error)
	}
	return res
}

func (c *Client) GetVendorOrders(ctx context.Context, username string) Result[[]models.VendorOrder] {
	c.log.Info("Fetching vendor orders", "username", username)
	res := execute[[]models.VendorOrder](c, ctx, http.MethodGet, routes.VendorOrders(username), nil)
	if res.Success {
		c.log.Success("Fetched vendor orders", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch vendor orders", "error", res.Error)
	}
	return res
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) Result[models.Order] {
	c.log.Info("Updating order status", "orderId", orderID, "status", status)

	body := struct {
		Status string `json:"status"`
	}{status}

	res := execute[models.Order](c, ctx, http.MethodPut, routes.OrderStatus(orderID), body)
	if res.Success {
		c.log.Success("Order status updated")
	} else {
		c.log.Error("Failed to update order status", "error", res.Error)
	}
	return res
}
