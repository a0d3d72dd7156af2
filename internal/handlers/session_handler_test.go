package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "catalog/internal/errors"
	"catalog/internal/services"
	"catalog/internal/viewstate"
)

const testSessionID = "0190a0b4-5c3e-7a1b-8c2d-3e4f5a6b7c8d"

// --- mock session service ---

type mockSessionService struct {
	createSessionFn func() *services.Session
	getSessionFn    func(id string) (*services.Session, error)
	dispatchFn      func(id string, action viewstate.Action) (*services.Session, error)
	deleteSessionFn func(id string) error
}

func (m *mockSessionService) CreateSession() *services.Session {
	if m.createSessionFn != nil {
		return m.createSessionFn()
	}
	return &services.Session{ID: testSessionID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func (m *mockSessionService) GetSession(id string) (*services.Session, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(id)
	}
	return &services.Session{ID: id}, nil
}

func (m *mockSessionService) Dispatch(id string, action viewstate.Action) (*services.Session, error) {
	if m.dispatchFn != nil {
		return m.dispatchFn(id, action)
	}
	return &services.Session{ID: id}, nil
}

func (m *mockSessionService) DeleteSession(id string) error {
	if m.deleteSessionFn != nil {
		return m.deleteSessionFn(id)
	}
	return nil
}

var _ services.SessionServicer = (*mockSessionService)(nil)

func setupSessionRouter(handler *SessionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/sessions", handler.CreateSession)
	r.GET("/sessions/:id", handler.GetSession)
	r.POST("/sessions/:id/actions", handler.DispatchAction)
	r.DELETE("/sessions/:id", handler.DeleteSession)
	return r
}

func TestSessionHandler_CreateSession(t *testing.T) {
	handler := NewSessionHandler(&mockSessionService{}, &mockCatalogService{})
	r := setupSessionRouter(handler)

	rec := doRequest(r, "POST", "/sessions", "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	session := result["session"].(map[string]interface{})
	if session["id"] != testSessionID {
		t.Errorf("expected session id %s, got %v", testSessionID, session["id"])
	}
	view := result["view"].(map[string]interface{})
	state := view["state"].(map[string]interface{})
	if ids := state["selected_category_ids"].([]interface{}); len(ids) != 0 {
		t.Errorf("expected empty category selection, got %v", ids)
	}
}

func TestSessionHandler_GetSession(t *testing.T) {
	t.Run("returns 200 with etag", func(t *testing.T) {
		handler := NewSessionHandler(&mockSessionService{}, &mockCatalogService{})
		r := setupSessionRouter(handler)

		rec := doRequest(r, "GET", "/sessions/"+testSessionID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		tag := rec.Header().Get("ETag")
		if tag == "" {
			t.Fatal("expected ETag header")
		}

		rec = doConditionalRequest(r, "/sessions/"+testSessionID, tag)
		if rec.Code != http.StatusNotModified {
			t.Fatalf("expected 304, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		handler := NewSessionHandler(&mockSessionService{}, &mockCatalogService{})
		r := setupSessionRouter(handler)

		rec := doRequest(r, "GET", "/sessions/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		sessions := &mockSessionService{
			getSessionFn: func(string) (*services.Session, error) {
				return nil, apperrors.ErrSessionNotFound
			},
		}
		r := setupSessionRouter(NewSessionHandler(sessions, &mockCatalogService{}))

		rec := doRequest(r, "GET", "/sessions/"+testSessionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SESSION_NOT_FOUND")
	})
}

func TestSessionHandler_DispatchAction(t *testing.T) {
	dispatchRecorder := func(got *viewstate.Action) *mockSessionService {
		return &mockSessionService{
			dispatchFn: func(id string, action viewstate.Action) (*services.Session, error) {
				*got = action
				return &services.Session{ID: id}, nil
			},
		}
	}

	t.Run("set_owner", func(t *testing.T) {
		var got viewstate.Action
		r := setupSessionRouter(NewSessionHandler(dispatchRecorder(&got), &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"set_owner","owner_id":2}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Type != viewstate.ActionSetOwner || got.OwnerID == nil || *got.OwnerID != 2 {
			t.Errorf("unexpected action %+v", got)
		}
	})

	t.Run("set_owner without id selects all", func(t *testing.T) {
		var got viewstate.Action
		r := setupSessionRouter(NewSessionHandler(dispatchRecorder(&got), &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"set_owner","owner_id":null}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.OwnerID != nil {
			t.Errorf("expected nil owner, got %v", *got.OwnerID)
		}
	})

	t.Run("toggle_category", func(t *testing.T) {
		var got viewstate.Action
		r := setupSessionRouter(NewSessionHandler(dispatchRecorder(&got), &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"toggle_category","category_id":4}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.CategoryID != 4 {
			t.Errorf("expected category 4, got %d", got.CategoryID)
		}
	})

	t.Run("set_search keeps text verbatim", func(t *testing.T) {
		var got viewstate.Action
		r := setupSessionRouter(NewSessionHandler(dispatchRecorder(&got), &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"set_search","text":" Mi "}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Text != " Mi " {
			t.Errorf("expected verbatim text, got %q", got.Text)
		}
	})

	t.Run("set_sort", func(t *testing.T) {
		var got viewstate.Action
		r := setupSessionRouter(NewSessionHandler(dispatchRecorder(&got), &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"set_sort","sort_key":"category.name"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.SortKey != viewstate.SortByCategoryName {
			t.Errorf("expected category.name, got %q", got.SortKey)
		}
	})

	t.Run("returns 400 on missing type", func(t *testing.T) {
		r := setupSessionRouter(NewSessionHandler(&mockSessionService{}, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"owner_id":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupSessionRouter(NewSessionHandler(&mockSessionService{}, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"rename"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on toggle without category", func(t *testing.T) {
		r := setupSessionRouter(NewSessionHandler(&mockSessionService{}, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"toggle_category"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on set_search without text", func(t *testing.T) {
		r := setupSessionRouter(NewSessionHandler(&mockSessionService{}, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"set_search"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid sort key", func(t *testing.T) {
		r := setupSessionRouter(NewSessionHandler(&mockSessionService{}, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"set_sort","sort_key":"price"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		r := setupSessionRouter(NewSessionHandler(&mockSessionService{}, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for unknown session", func(t *testing.T) {
		sessions := &mockSessionService{
			dispatchFn: func(string, viewstate.Action) (*services.Session, error) {
				return nil, apperrors.ErrSessionNotFound
			},
		}
		r := setupSessionRouter(NewSessionHandler(sessions, &mockCatalogService{}))

		rec := doRequest(r, "POST", "/sessions/"+testSessionID+"/actions", `{"type":"reset_all"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestSessionHandler_DeleteSession(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var deleted string
		sessions := &mockSessionService{
			deleteSessionFn: func(id string) error {
				deleted = id
				return nil
			},
		}
		r := setupSessionRouter(NewSessionHandler(sessions, &mockCatalogService{}))

		rec := doRequest(r, "DELETE", "/sessions/"+testSessionID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != testSessionID {
			t.Errorf("expected %s to be deleted, got %s", testSessionID, deleted)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		sessions := &mockSessionService{
			deleteSessionFn: func(string) error { return apperrors.ErrSessionNotFound },
		}
		r := setupSessionRouter(NewSessionHandler(sessions, &mockCatalogService{}))

		rec := doRequest(r, "DELETE", "/sessions/"+testSessionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
