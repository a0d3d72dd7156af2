package services

import (
	"catalog/internal/logger"
	"catalog/internal/viewstate"
)

// auditService writes every view-state transition to the structured log.
// Transitions are never persisted.
type auditService struct{}

// NewAuditService creates a new ActionRecorder.
func NewAuditService() ActionRecorder {
	return &auditService{}
}

// Record logs one applied action with the state before and after it.
func (s *auditService) Record(sessionID string, action viewstate.Action, before, after viewstate.ViewState) {
	logger.Get().Infow("view state changed",
		"session_id", sessionID,
		"action", action.Type,
		"changed", !before.Equal(after),
		"owner_filter", after.SelectedOwnerID,
		"category_filter", after.SelectedCategoryIDs,
		"search_term", after.SearchTerm,
		"sort_key", after.SortKey,
		"sort_direction", after.SortDirection,
	)
}
