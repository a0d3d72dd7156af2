package services

import (
	"context"
	"time"

	"catalog/internal/derive"
	"catalog/internal/models"
	"catalog/internal/viewstate"
)

// BrowseResult is the derived view for one view state: the state itself,
// the filter panel model and the visible products.
type BrowseResult struct {
	State    viewstate.ViewState      `json:"state"`
	Panel    derive.Panel             `json:"panel"`
	Products []derive.EnrichedProduct `json:"products"`
	Total    int                      `json:"total"`
	Matched  int                      `json:"matched"`
	// Message is set only when no product matches.
	Message string `json:"message,omitempty"`
}

// CatalogServicer defines the contract for reading and deriving the catalog.
type CatalogServicer interface {
	GetUsers() []models.User
	GetCategories() []models.Category
	Browse(ctx context.Context, state viewstate.ViewState) (*BrowseResult, error)
}

// Session is a browsing session that owns one view state.
type Session struct {
	ID        string              `json:"id"`
	State     viewstate.ViewState `json:"state"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// SessionServicer defines the contract for the per-client view-state stores.
type SessionServicer interface {
	CreateSession() *Session
	GetSession(id string) (*Session, error)
	Dispatch(id string, action viewstate.Action) (*Session, error)
	DeleteSession(id string) error
}

// ActionRecorder records view-state transitions.
type ActionRecorder interface {
	Record(sessionID string, action viewstate.Action, before, after viewstate.ViewState)
}
