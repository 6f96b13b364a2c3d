package api

import (
	"context"

	"salonhub/internal/domain"
)

func (c *Client) SystemAnalytics(ctx context.Context) (*domain.SystemAnalytics, error) {
	var report domain.SystemAnalytics
	if _, err := c.get(ctx, "/analytics/system", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) UserAnalytics(ctx context.Context) (*domain.UserAnalytics, error) {
	var report domain.UserAnalytics
	if _, err := c.get(ctx, "/analytics/users", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) BookingAnalytics(ctx context.Context) (*domain.BookingAnalytics, error) {
	var report domain.BookingAnalytics
	if _, err := c.get(ctx, "/analytics/bookings", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) SalonDirectoryAnalytics(ctx context.Context) (*domain.SalonDirectoryAnalytics, error) {
	var report domain.SalonDirectoryAnalytics
	if _, err := c.get(ctx, "/analytics/salons", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
