package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonhub/internal/domain"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(handler http.Handler, token string) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New(Config{BaseURL: srv.URL})
	if token != "" {
		client.SetTokenSource(staticToken(token))
	}
	return client, srv
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
	}), "token-123")
	defer srv.Close()

	_, err := client.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestNoAuthorizationWithoutToken(t *testing.T) {
	var auth string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true})
	}), "")
	defer srv.Close()

	require.NoError(t, client.ForgotPassword(context.Background(), "dana@example.com"))
	assert.Empty(t, auth)
}

func TestLoginDecodesPayload(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dana@example.com", body["email"])

		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "jwt-abc",
				"user":  map[string]any{"id": "u1", "name": "Dana", "email": "dana@example.com", "role": "salon_owner"},
			},
		})
	}), "")
	defer srv.Close()

	payload, err := client.Login(context.Background(), "dana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", payload.Token)
	assert.Equal(t, domain.RoleSalonOwner, payload.User.Role)
}

func TestListQueryParams(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "6", q.Get("limit"))
		assert.Equal(t, "velvet", q.Get("search"))
		assert.Equal(t, "pending", q.Get("status"))

		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []any{map[string]any{"id": "s1", "name": "Velvet & Shears"}},
			"total":   13, "page": 2, "pages": 3,
		})
	}), "token")
	defer srv.Close()

	salons, meta, err := client.AdminSalons(context.Background(), ListQuery{
		Page: 2, Limit: SalonsPageSize, Search: "velvet", Status: "pending",
	})
	require.NoError(t, err)
	require.Len(t, salons, 1)
	assert.Equal(t, "Velvet & Shears", salons[0].Name)
	assert.Equal(t, &Meta{Total: 13, Page: 2, Pages: 3}, meta)
}

func TestBackendErrorSurfacesMessage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "invalid email or password"})
	}), "")
	defer srv.Close()

	_, err := client.Login(context.Background(), "dana@example.com", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid email or password", apiErr.Error())
}

func TestSuccessFalseWithOKStatusIsError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{"success": false, "error": "something broke"})
	}), "")
	defer srv.Close()

	_, err := client.Me(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "something broke", apiErr.Message)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := New(Config{BaseURL: srv.URL})
	srv.Close()

	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestCancelledContextPassesThrough(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true})
	}), "")
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Me(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestMalformedBodyIsError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}), "")
	defer srv.Close()

	_, err := client.Me(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unexpected response from server", apiErr.Message)
}

func TestCreateSalonMultipart(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		mediaType := r.Header.Get("Content-Type")
		assert.Contains(t, mediaType, "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Velvet & Shears", r.FormValue("name"))
		assert.Equal(t, "12 Main Street", r.FormValue("address"))

		var hours domain.WorkingHours
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("workingHours")), &hours))
		assert.Equal(t, "09:00", hours["monday"].Open)

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 1)
		assert.Equal(t, "front.jpg", files[0].Filename)

		writeEnvelope(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "s1", "name": "Velvet & Shears", "status": "pending"},
		})
	}), "token")
	defer srv.Close()

	salon, err := client.CreateSalon(context.Background(), SalonInput{
		Name:         "Velvet & Shears",
		Address:      "12 Main Street",
		WorkingHours: domain.DefaultWorkingHours(),
		Images:       []ImageFile{{Name: "front.jpg", Reader: strings.NewReader("jpeg-bytes")}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SalonPending, salon.Status)
}

func TestUpdateBookingStatusBody(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/salon-owner/bookings/b1/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "confirmed", body["status"])

		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "b1", "status": "confirmed"},
		})
	}), "token")
	defer srv.Close()

	booking, err := client.UpdateBookingStatus(context.Background(), "b1", domain.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
}

func TestDeleteSalon(t *testing.T) {
	var method, path string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true})
	}), "token")
	defer srv.Close()

	require.NoError(t, client.DeleteSalon(context.Background(), "s9"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/admin/salons/s9", path)
}

func TestErrorFallbackMessage(t *testing.T) {
	err := &Error{Status: 503}
	assert.Equal(t, "request failed with status 503", err.Error())
}
