package routes

import (
	"fmt"
	"net/url"
)

func User(username string) string {
	return "/users/" + url.PathEscape(username)
}

func Addresses(username string) string {
	return User(username) + "/addresses"
}

func Address(username string, addressID int64) string {
	return fmt.Sprintf("%s/addresses/%d", User(username), addressID)
}

func DefaultAddress(username string, addressID int64) string {
	return Address(username, addressID) + "/default"
}
