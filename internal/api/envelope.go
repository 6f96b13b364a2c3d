package api

import "encoding/json"

// envelope is the uniform response shape every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Total   int             `json:"total,omitempty"`
	Page    int             `json:"page,omitempty"`
	Pages   int             `json:"pages,omitempty"`
}
