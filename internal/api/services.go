package api

import (
	"context"
	"net/url"

	"salonhub/internal/domain"
)

type ServiceInput struct {
	SalonID     string  `json:"salonId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
}

func (c *Client) Services(ctx context.Context, salonID string, q ListQuery) ([]domain.Service, *Meta, error) {
	values := q.values()
	if salonID != "" {
		values.Set("salonId", salonID)
	}
	var services []domain.Service
	meta, err := c.get(ctx, "/services", values, &services)
	if err != nil {
		return nil, nil, err
	}
	return services, meta, nil
}

func (c *Client) Service(ctx context.Context, id string) (*domain.Service, error) {
	var service domain.Service
	if _, err := c.get(ctx, "/services/"+id, url.Values{}, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*domain.Service, error) {
	var service domain.Service
	if _, err := c.post(ctx, "/services", in, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, in ServiceInput) (*domain.Service, error) {
	var service domain.Service
	if _, err := c.put(ctx, "/services/"+id, in, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.delete(ctx, "/services/"+id)
}
