package api

import (
	"context"

	"salonhub/internal/domain"
)

// UpdateBookingStatus requests a single lifecycle transition. The caller
// re-fetches the list afterwards; no local patch is applied.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	var booking domain.Booking
	if _, err := c.put(ctx, "/salon-owner/bookings/"+id+"/status", map[string]string{"status": string(status)}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) AdminBookings(ctx context.Context, q ListQuery) ([]domain.Booking, *Meta, error) {
	var bookings []domain.Booking
	meta, err := c.get(ctx, "/admin/bookings", q.values(), &bookings)
	if err != nil {
		return nil, nil, err
	}
	return bookings, meta, nil
}
