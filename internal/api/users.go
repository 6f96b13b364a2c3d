package api

import (
	"context"

	"salonhub/internal/domain"
)

type UserInput struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	IsVerified *bool  `json:"isVerified,omitempty"`
}

func (c *Client) AdminUsers(ctx context.Context, q ListQuery) ([]domain.User, *Meta, error) {
	var users []domain.User
	meta, err := c.get(ctx, "/admin/users", q.values(), &users)
	if err != nil {
		return nil, nil, err
	}
	return users, meta, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) (*domain.User, error) {
	var user domain.User
	if _, err := c.put(ctx, "/admin/users/"+id, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	var user domain.User
	if _, err := c.put(ctx, "/admin/users/"+id+"/role", map[string]string{"role": string(role)}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/users/"+id)
}
