package api

import (
	"context"
	"net/http"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

func (c *Client) GetAddresses(ctx context.Context, username string) Result[[]models.Address] {
	c.log.Info("Fetching addresses", "username", username)
	res := execute[[]models.Address](c, ctx, http.MethodGet, routes.Addresses(username), nil)
	if res.Success {
		c.log.Success("Fetched addresses", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch addresses", "error", res.Error)
	}
	return res
}

func (c *Client) AddAddress(ctx context.Context, username string, address models.Address) Result[models.Address] {
	c.log.Info("Adding address", "username", username)
	res := execute[models.Address](c, ctx, http.MethodPost, routes.Addresses(username), address)
	if res.Success {
		c.log.Success("Address added successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to add address", "error", res.Error)
	}
	return res
}

func (c *Client) UpdateAddress(ctx context.Context, username string, addressID int64, address models.Address) Result[models.Address] {
	c.log.Info("Updating address", "username", username, "addressId", addressID)
	res := execute[models.Address](c, ctx, http.MethodPut, routes.Address(username, addressID), address)
	if res.Success {
		c.log.Success("Address updated successfully", "id", res.Data.ID)
	} else {
		c.log.Error("Failed to update address", "error", res.Error)
	}
	return res
}

func (c *Client) DeleteAddress(ctx context.Context, username string, addressID int64) Result[struct{}] {
	c.log.Info("Deleting address", "username", username, "addressId", addressID)
	res := execute[struct{}](c, ctx, http.MethodDelete, routes.Address(username, addressID), nil)
	if res.Success {
		c.log.Success("Address deleted successfully")
	} else {
		c.log.Error("Failed to delete address", "error", res.Error)
	}
	return res
}

// SetDefaultAddress flags one address as the default; the backend clears
// the flag on every other address of the user.
func (c *Client) SetDefaultAddress(ctx context.Context, username string, addressID int64) Result[models.Address] {
	c.log.Info("Setting default address", "username", username, "addressId", addressID)
	res := execute[models.Address](c, ctx, http.MethodPut, routes.DefaultAddress(username, addressID), nil)
	if res.Success {
		c.log.Success("Default address set")
	} else {
		c.log.Error("Failed to set default address", "error", res.Error)
	}
	return res
}
