package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"salonhub/internal/domain"
)

// ImageFile is one salon image for a multipart upload.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// SalonInput carries the editable salon fields. Images, when present,
// are uploaded alongside the fields in one multipart request.
type SalonInput struct {
	Name         string
	Description  string
	Address      string
	Phone        string
	Email        string
	WorkingHours domain.WorkingHours
	Images       []ImageFile
}

func (c *Client) MySalons(ctx context.Context, q ListQuery) ([]domain.Salon, *Meta, error) {
	var salons []domain.Salon
	meta, err := c.get(ctx, "/salon-owner/salons", q.values(), &salons)
	if err != nil {
		return nil, nil, err
	}
	return salons, meta, nil
}

func (c *Client) MySalon(ctx context.Context, id string) (*domain.Salon, error) {
	var salon domain.Salon
	if _, err := c.get(ctx, "/salon-owner/salons/"+id, nil, &salon); err != nil {
		return nil, err
	}
	return &salon, nil
}

func (c *Client) CreateSalon(ctx context.Context, in SalonInput) (*domain.Salon, error) {
	return c.uploadSalon(ctx, http.MethodPost, "/salon-owner/salons", in)
}

func (c *Client) UpdateSalon(ctx context.Context, id string, in SalonInput) (*domain.Salon, error) {
	return c.uploadSalon(ctx, http.MethodPut, "/salon-owner/salons/"+id, in)
}

func (c *Client) uploadSalon(ctx context.Context, method, path string, in SalonInput) (*domain.Salon, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"address":     in.Address,
		"phone":       in.Phone,
		"email":       in.Email,
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if in.WorkingHours != nil {
		raw, err := json.Marshal(in.WorkingHours)
		if err != nil {
			return nil, err
		}
		if err := w.WriteField("workingHours", string(raw)); err != nil {
			return nil, err
		}
	}
	for _, img := range in.Images {
		part, err := w.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, img.Reader); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var salon domain.Salon
	if _, err := c.do(ctx, method, path, nil, w.FormDataContentType(), body, &salon); err != nil {
		return nil, err
	}
	return &salon, nil
}

func (c *Client) SalonBookings(ctx context.Context, salonID string, q ListQuery) ([]domain.Booking, *Meta, error) {
	var bookings []domain.Booking
	meta, err := c.get(ctx, "/salon-owner/salons/"+salonID+"/bookings", q.values(), &bookings)
	if err != nil {
		return nil, nil, err
	}
	return bookings, meta, nil
}

func (c *Client) SalonAnalytics(ctx context.Context, salonID string) (*domain.SalonAnalytics, error) {
	var report domain.SalonAnalytics
	if _, err := c.get(ctx, "/salon-owner/salons/"+salonID+"/analytics", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Admin-scoped salon management.

func (c *Client) AdminSalons(ctx context.Context, q ListQuery) ([]domain.Salon, *Meta, error) {
	var salons []domain.Salon
	meta, err := c.get(ctx, "/admin/salons", q.values(), &salons)
	if err != nil {
		return nil, nil, err
	}
	return salons, meta, nil
}

func (c *Client) UpdateSalonStatus(ctx context.Context, id string, status domain.SalonStatus) (*domain.Salon, error) {
	var salon domain.Salon
	if _, err := c.put(ctx, "/admin/salons/"+id+"/status", map[string]string{"status": string(status)}, &salon); err != nil {
		return nil, err
	}
	return &salon, nil
}

func (c *Client) DeleteSalon(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/salons/"+id)
}
