package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo encodes the monotonic booking lifecycle:
// pending -> confirmed|cancelled, confirmed -> completed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted
	}
	return false
}

// NextStatuses lists the transitions the dashboard exposes as actions
// for a booking in this status.
func (s BookingStatus) NextStatuses() []BookingStatus {
	switch s {
	case BookingPending:
		return []BookingStatus{BookingConfirmed, BookingCancelled}
	case BookingConfirmed:
		return []BookingStatus{BookingCompleted}
	}
	return nil
}

type Booking struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customerId"`
	CustomerName string        `json:"customerName,omitempty"`
	SalonID      string        `json:"salonId"`
	ServiceID    string        `json:"serviceId"`
	ServiceName  string        `json:"serviceName,omitempty"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Status       BookingStatus `json:"status"`
	TotalAmount  float64       `json:"totalAmount"`
	Notes        string        `json:"notes,omitempty"`
}
