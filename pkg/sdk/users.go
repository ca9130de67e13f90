package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
)

const usersPath = "/usuarios"

// ListUsers returns every user. Records that cannot be decoded are logged
// and skipped so one bad record does not hide the rest of the directory.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var records []json.RawMessage
	if err := c.do(ctx, http.MethodGet, usersPath, nil, &records); err != nil {
		return nil, err
	}

	users := make([]User, 0, len(records))
	for i, record := range records {
		var user User
		if err := json.Unmarshal(record, &user); err != nil {
			c.logger.Warn("skipping unreadable user record", "index", i, "error", err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// GetUser fetches a single user.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, resourcePath(usersPath, id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates an account through the registration endpoint. The bare
// role name in input.Rol is mapped to its ROLE_ form; empty means ESTUDIANTE.
func (c *Client) CreateUser(ctx context.Context, input UserInput) (*AuthResponse, error) {
	role := RoleEstudiante
	if input.Rol != "" {
		normalized, ok := NormalizeRole(input.Rol)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", input.Rol)
		}
		role = normalized
	}

	return c.Register(ctx, RegisterRequest{
		Email:    input.Email,
		Password: input.Password,
		Nombre:   input.Nombre,
		Role:     role,
	})
}

// UpdateUser replaces the user with the given id. An empty password leaves
// the stored password unchanged.
func (c *Client) UpdateUser(ctx context.Context, id int64, input UserInput) (*User, error) {
	if input.Rol != "" {
		role, ok := NormalizeRole(input.Rol)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", input.Rol)
		}
		input.Rol = role.Bare()
	}

	var user User
	if err := c.do(ctx, http.MethodPut, resourcePath(usersPath, id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, resourcePath(usersPath, id), nil, nil)
}

// SearchUsers keeps the users whose name or email contains term, ignoring case.
// A blank term keeps everything.
func SearchUsers(users []User, term string) []User {
	term = strings.TrimSpace(term)
	out := make([]User, 0, len(users))
	if term == "" {
		return append(out, users...)
	}

	fold := cases.Fold()
	needle := fold.String(term)
	for _, u := range users {
		if strings.Contains(fold.String(u.Nombre), needle) || strings.Contains(fold.String(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// FindUserByEmail returns the first user whose email matches, ignoring case.
func FindUserByEmail(users []User, email string) (*User, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], true
		}
	}
	return nil, false
}
