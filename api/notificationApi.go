package api

import (
	"context"
	"net/http"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

func (c *Client) GetVendorNotifications(ctx context.Context, vendorID int64) Result[[]models.Notification] {
	c.log.Info("Fetching vendor notifications", "vendorId", vendorID)
	res := execute[[]models.Notification](c, ctx, http.MethodGet, routes.VendorNotifications(vendorID), nil)
	if res.Success {
		c.log.Success("Fetched vendor notifications", "count", len(res.Data))
	} else {
		c.log.Error("Failed to fetch vendor notifications", "error", res.Error)
	}
	return res
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) Result[struct{}] {
	c.log.Info("Marking notification as read", "notificationId", notificationID)
	res := execute[struct{}](c, ctx, http.MethodPut, routes.NotificationRead(notificationID), nil)
	if res.Success {
		c.log.Success("Notification marked as read")
	} else {
		c.log.Error("Failed to mark notification as read", "error", res.Error)
	}
	return res
}
