package api

import (
	"context"

	"salonhub/internal/domain"
)

// AuthPayload is the credential-exchange result: a bearer token plus the
// user record it was issued for.
type AuthPayload struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type RegisterOwnerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	body := map[string]string{"email": email, "password": password}
	var payload AuthPayload
	if _, err := c.post(ctx, "/auth/login", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*AuthPayload, error) {
	var payload AuthPayload
	if _, err := c.post(ctx, "/auth/register", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if _, err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/auth/logout", nil, nil)
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
	return err
}

func (c *Client) VerifyPasswordResetOTP(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "otp": code}
	_, err := c.post(ctx, "/auth/verify-password-reset-otp", body, nil)
	return err
}

func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{"email": email, "otp": code, "newPassword": newPassword}
	_, err := c.post(ctx, "/auth/reset-password", body, nil)
	return err
}

func (c *Client) NotificationSettings(ctx context.Context) (*domain.NotificationSettings, error) {
	var settings domain.NotificationSettings
	if _, err := c.get(ctx, "/auth/notification-settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error {
	_, err := c.put(ctx, "/auth/notification-settings", settings, nil)
	return err
}
