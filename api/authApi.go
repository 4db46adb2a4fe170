package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/routes"
)

// loginEnvelope accepts both response shapes the backend has shipped:
// {"message": ..., "user": {...}} and a bare user object.
type loginEnvelope struct {
	Message string
	User    *models.User
}

func (e *loginEnvelope) UnmarshalJSON(raw []byte) error {
	var wrapped struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return err
	}
	if wrapped.User == nil {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return err
		}
		wrapped.User = &user
	}
	e.Message = wrapped.Message
	e.User = wrapped.User
	return nil
}

// Login authenticates and persists the session record. The stored user
// becomes the sole session until the next login or logout.
func (c *Client) Login(ctx context.Context, username, password string) Result[models.SessionUser] {
	c.log.Info("Login attempt", "username", username)

	res := execute[loginEnvelope](c, ctx, http.MethodPost, routes.Login, models.Credentials{
		Username: username,
		Password: password,
	})
	if !res.Success {
		c.log.Error("Login failed", "error", res.Error)
		if res.Error == "" {
			return fail[models.SessionUser]("Invalid credentials")
		}
		return fail[models.SessionUser](res.Error)
	}

	remote := res.Data.User
	if remote == nil {
		c.log.Error("Login response carried no user")
		return fail[models.SessionUser]("Invalid credentials")
	}
	user := models.SessionUser{
		ID:        remote.ID,
		Username:  remote.Username,
		Role:      remote.Role,
		Pincode:   remote.Pincode,
		Email:     remote.Email,
		Phone:     remote.Phone,
		Address:   remote.Address,
		LoginTime: time.Now(),
	}
	if user.Username == "" {
		user.Username = username
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	if err := c.sessions.SaveUser(user); err != nil {
		c.log.Error("Failed to store user data", "error", err)
		return fail[models.SessionUser](err.Error())
	}
	c.log.Success("Login successful", "username", user.Username, "role", user.Role)
	return ok(user)
}

// Register creates an account. The new user is returned but not signed in.
func (c *Client) Register(ctx context.Context, user models.User) Result[models.User] {
	c.log.Info("Registration attempt", "username", user.Username)

	res := execute[models.User](c, ctx, http.MethodPost, routes.Register, user)
	if !res.Success {
		c.log.Error("Registration failed", "error", res.Error)
		if res.Error == "" {
			return fail[models.User]("Registration failed")
		}
		return res
	}
	c.log.Success("Registration successful", "username", res.Data.Username)
	return res
}

// Logout deletes the persisted session synchronously. No request is made.
func (c *Client) Logout() {
	c.log.Info("Logging out user")
	c.sessions.Logout()
	c.log.Success("User logged out")
}
