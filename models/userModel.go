package models

import "time"

const (
	RoleCustomer = "CUSTOMER"
	RoleVendor   = "VENDOR"
)

// User mirrors the backend user entity.
type User struct {
	ID          int64     `json:"id,omitempty"`
	Username    string    `json:"username,omitempty"`
	Password    string    `json:"password,omitempty"`
	Role        string    `json:"role,omitempty"`
	Pincode     string    `json:"pincode,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	FullName    string    `json:"fullName,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	City        string    `json:"city,omitempty"`
	Address     string    `json:"address,omitempty"`
	Addresses   []Address `json:"addresses,omitempty"`
}

// SessionUser is the single record persisted for the signed-in user. It is
// written on login, overwritten by the next login and removed on logout.
type SessionUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Pincode   string    `json:"pincode"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	LoginTime time.Time `json:"loginTime"`
}

// UserUpdate carries a partial profile update. Nil fields are left untouched
// by the backend.
type UserUpdate struct {
	FullName        *string `json:"fullName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Pincode         *string `json:"pincode,omitempty"`
	City            *string `json:"city,omitempty"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
