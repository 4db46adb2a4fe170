package routes

import "fmt"

func VendorNotifications(vendorID int64) string {
	return fmt.Sprintf("/notifications/vendor/%d", vendorID)
}

func NotificationRead(notificationID int64) string {
	return fmt.Sprintf("/notifications/%d/read", notificationID)
}
