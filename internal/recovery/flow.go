// Package recovery drives the three-step forgot-password flow:
// email -> otp -> reset. Each step gates which backend call is valid
// next; a failed call never advances the state.
package recovery

import (
	"context"
	"errors"
)

type State string

const (
	StateEmail State = "email"
	StateOTP   State = "otp"
	StateReset State = "reset"
	StateDone  State = "done"
)

const minPasswordLength = 6

var (
	ErrInvalidStep      = errors.New("action not available in the current step")
	ErrEmailRequired    = errors.New("email is required")
	ErrCodeRequired     = errors.New("verification code is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// AuthAPI is the slice of the platform client the flow needs.
type AuthAPI interface {
	ForgotPassword(ctx context.Context, email string) error
	VerifyPasswordResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type Flow struct {
	api   AuthAPI
	state State
	email string
	code  string
}

func New(authAPI AuthAPI) *Flow {
	return &Flow{api: authAPI, state: StateEmail}
}

func (f *Flow) State() State { return f.state }

func (f *Flow) Email() string { return f.email }

// SubmitEmail requests a reset code. On success the flow moves to the
// otp step; on failure it stays put and the error is surfaced.
func (f *Flow) SubmitEmail(ctx context.Context, email string) error {
	if f.state != StateEmail {
		return ErrInvalidStep
	}
	if email == "" {
		return ErrEmailRequired
	}
	if err := f.api.ForgotPassword(ctx, email); err != nil {
		return err
	}
	f.email = email
	f.state = StateOTP
	return nil
}

// Resend re-requests a code for the already-submitted address without
// leaving the otp step.
func (f *Flow) Resend(ctx context.Context) error {
	if f.state != StateOTP {
		return ErrInvalidStep
	}
	return f.api.ForgotPassword(ctx, f.email)
}

func (f *Flow) SubmitCode(ctx context.Context, code string) error {
	if f.state != StateOTP {
		return ErrInvalidStep
	}
	if code == "" {
		return ErrCodeRequired
	}
	if err := f.api.VerifyPasswordResetOTP(ctx, f.email, code); err != nil {
		return err
	}
	f.code = code
	f.state = StateReset
	return nil
}

// SubmitNewPassword validates locally before any network call: a
// mismatch or too-short password never reaches the backend.
func (f *Flow) SubmitNewPassword(ctx context.Context, newPassword, confirm string) error {
	if f.state != StateReset {
		return ErrInvalidStep
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if err := f.api.ResetPassword(ctx, f.email, f.code, newPassword); err != nil {
		return err
	}
	f.state = StateDone
	return nil
}
