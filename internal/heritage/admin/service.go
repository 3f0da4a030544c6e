package admin

import (
	"context"
	"errors"
)

// ErrUnauthorized indicates the backend rejected the admin credentials or
// the session cookie has lapsed.
var ErrUnauthorized = errors.New("admin: unauthorized")

// Event is one admin-visible record as returned by the admin sub-API.
type Event struct {
	ID          string `json:"id"`
	URI         string `json:"uri,omitempty"`
	Type        string `json:"type,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

// CreateRequest carries the fields for a new record.
type CreateRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Service describes the authenticated subset of the backend API used for
// login, logout, listing, create, and delete.
type Service interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	ListEvents(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, req CreateRequest) error
	DeleteEvent(ctx context.Context, id string) error
}
