package api

import (
	"context"
	"net/http"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

func (c *Client) GetUser(ctx context.Context, username string) Result[models.User] {
	c.log.Info("Fetching user", "username", username)
	res := execute[models.User](c, ctx, http.MethodGet, routes.User(username), nil)
	if res.Success {
		c.log.Success("Fetched user", "username", res.Data.Username)
	} else {
		c.log.Error("Failed to fetch user", "error", res.Error)
	}
	return res
}

func (c *Client) UpdateUser(ctx context.Context, username string, update models.UserUpdate) Result[models.User] {
	c.log.Info("Updating user", "username", username)
	res := execute[models.User](c, ctx, http.MethodPut, routes.User(username), update)
	if res.Success {
		c.log.Success("User updated", "username", res.Data.Username)
	} else {
		c.log.Error("Failed to update user", "error", res.Error)
	}
	return res
}
