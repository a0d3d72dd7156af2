package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "catalog/internal/errors"
	"catalog/internal/services"
	"catalog/internal/viewstate"
)

// SessionHandler exposes browsing sessions: each one owns a view state that
// clients change one action at a time.
type SessionHandler struct {
	sessionService services.SessionServicer
	catalogService services.CatalogServicer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService services.SessionServicer, catalogService services.CatalogServicer) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, catalogService: catalogService}
}

// DispatchActionRequest represents one user interaction.
type DispatchActionRequest struct {
	Type       string  `json:"type" binding:"required,action_type"`
	OwnerID    *uint   `json:"owner_id"`
	CategoryID *uint   `json:"category_id"`
	Text       *string `json:"text"`
	SortKey    string  `json:"sort_key" binding:"omitempty,sort_key"`
}

// action converts the request into a view-state action, checking that the
// fields the action type needs are present.
func (r DispatchActionRequest) action() (viewstate.Action, error) {
	a := viewstate.Action{Type: viewstate.ActionType(r.Type), OwnerID: r.OwnerID}

	switch a.Type {
	case viewstate.ActionToggleCategory:
		if r.CategoryID == nil {
			return a, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required for toggle_category")
		}
		a.CategoryID = *r.CategoryID
	case viewstate.ActionSetSearch:
		if r.Text == nil {
			return a, apperrors.WithMessage(apperrors.ErrInvalidInput, "text is required for set_search")
		}
		a.Text = *r.Text
	case viewstate.ActionSetSort:
		key, err := viewstate.ParseSortKey(r.SortKey)
		if err != nil {
			return a, err
		}
		a.SortKey = key
	}
	return a, nil
}

// SessionResponse is a session together with its derived view.
type SessionResponse struct {
	Session *services.Session      `json:"session"`
	View    *services.BrowseResult `json:"view"`
}

func (h *SessionHandler) respond(c *gin.Context, status int, session *services.Session) {
	view, err := h.catalogService.Browse(c.Request.Context(), session.State)
	if err != nil {
		respondWithError(c, err)
		return
	}
	body := SessionResponse{Session: session, View: view}
	if c.Request.Method == http.MethodGet {
		respondWithETag(c, status, body)
		return
	}
	c.JSON(status, body)
}

// CreateSession starts a browsing session with the default view state
// @Summary     Create a session
// @Description Start a browsing session with no filters and no sort
// @Tags        sessions
// @Produce     json
// @Success     201 {object} SessionResponse "Session created"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session := h.sessionService.CreateSession()
	h.respond(c, http.StatusCreated, session)
}

// GetSession returns a session's view state and derived products
// @Summary     Get a session
// @Description Get the current view state, filter panel and visible products of a session
// @Tags        sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} SessionResponse "Session view"
// @Success     304 "Not modified"
// @Failure     400 {object} ErrorResponse "Invalid session ID"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	session, err := h.sessionService.GetSession(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.respond(c, http.StatusOK, session)
}

// DispatchAction applies one user interaction to a session
// @Summary     Dispatch an action
// @Description Apply set_owner, toggle_category, clear_categories, set_search, clear_search, set_sort or reset_all
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Session ID"
// @Param       request body DispatchActionRequest true "Action"
// @Success     200 {object} SessionResponse "Updated session view"
// @Failure     400 {object} ErrorResponse "Invalid action"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /sessions/{id}/actions [post]
func (h *SessionHandler) DispatchAction(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DispatchActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	action, err := req.action()
	if err != nil {
		respondWithError(c, err)
		return
	}

	session, err := h.sessionService.Dispatch(id, action)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.respond(c, http.StatusOK, session)
}

// DeleteSession discards a session
// @Summary     Delete a session
// @Description Discard a browsing session and its view state
// @Tags        sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} MessageResponse "Session deleted"
// @Failure     400 {object} ErrorResponse "Invalid session ID"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sessionService.DeleteSession(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Session deleted successfully"})
}
