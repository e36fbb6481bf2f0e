package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldboard/domain"
	middleware_custom "fieldboard/middleware"
	errs "fieldboard/utils/errors"
)

type stubWorkspaceStore struct {
	workspace *domain.Workspace
	fetchErr  error
	saveErr   error
	savedFor  string
}

func (s *stubWorkspaceStore) FetchWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	return s.workspace, s.fetchErr
}

func (s *stubWorkspaceStore) SaveWorkspace(ctx context.Context, userID string, workspace *domain.Workspace) (*domain.Workspace, error) {
	s.savedFor = userID
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	saved := *workspace
	saved.Version = 7
	return &saved, nil
}

type stubAuthPort struct {
	user *domain.UserContext
	err  error
	seen string
}

func (s *stubAuthPort) ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error) {
	s.seen = sessionToken
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func authorized() *stubAuthPort {
	return &stubAuthPort{user: &domain.UserContext{UserID: "user-7", Email: "grower@example.com"}}
}

func TestWorkspace_RequiresSession(t *testing.T) {
	e := newTestServer(t, nil, nil, &stubAuthPort{err: errs.ErrUnauthenticated})

	for _, method := range []string{http.MethodGet, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/workspace", strings.NewReader("{}"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Authentication required", rec.Body.String())
		})
	}
}

func TestWorkspace_BearerTokenReachesAuthService(t *testing.T) {
	auth := authorized()
	e := newTestServer(t, nil, &stubWorkspaceStore{}, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/workspace", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-xyz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token-xyz", auth.seen)
}

func TestWorkspace_SessionCookieAccepted(t *testing.T) {
	auth := authorized()
	e := newTestServer(t, nil, &stubWorkspaceStore{}, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/workspace", nil)
	req.AddCookie(&http.Cookie{Name: middleware_custom.SessionCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie-token", auth.seen)
}

func TestWorkspace_GetEmptyForNewAccount(t *testing.T) {
	e := newTestServer(t, nil, &stubWorkspaceStore{workspace: nil}, authorized())

	req := httptest.NewRequest(http.MethodGet, "/api/workspace", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer t")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var workspace domain.Workspace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &workspace))
	assert.Empty(t, workspace.Fields)
}

func TestWorkspace_GetExisting(t *testing.T) {
	stored := &domain.Workspace{
		Fields: []domain.Field{
			{ID: "f1", Name: "East terrace", Images: []domain.FieldImage{
				{ID: "i1", URL: "https://cdn.example.com/1.jpg", Position: 0},
			}},
		},
		Version: 3,
	}
	e := newTestServer(t, nil, &stubWorkspaceStore{workspace: stored}, authorized())

	req := httptest.NewRequest(http.MethodGet, "/api/workspace", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer t")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var workspace domain.Workspace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &workspace))
	assert.Equal(t, stored.Fields, workspace.Fields)
	assert.Equal(t, int64(3), workspace.Version)
}

func TestWorkspace_PutStoresForAuthenticatedUser(t *testing.T) {
	store := &stubWorkspaceStore{}
	e := newTestServer(t, nil, store, authorized())

	body := `{"fields":[{"name":"West block","images":[{"url":"https://cdn.example.com/1.jpg"}]}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/workspace", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer t")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", store.savedFor)

	var saved domain.Workspace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(7), saved.Version)
	require.Len(t, saved.Fields, 1)
	assert.NotEmpty(t, saved.Fields[0].ID, "server assigns missing ids")
}

func TestWorkspace_PutRejectsInvalidSnapshot(t *testing.T) {
	store := &stubWorkspaceStore{}
	e := newTestServer(t, nil, store, authorized())

	// An image without a url fails validation before the store is touched.
	body := `{"fields":[{"name":"f","images":[{"note":"no url"}]}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/workspace", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer t")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid workspace payload", rec.Body.String())
	assert.Empty(t, store.savedFor)
}

func TestWorkspace_PutStoreFailure(t *testing.T) {
	store := &stubWorkspaceStore{saveErr: errs.DatabaseError("boom", nil, nil)}
	e := newTestServer(t, nil, store, authorized())

	req := httptest.NewRequest(http.MethodPut, "/api/workspace", strings.NewReader(`{"fields":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer t")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to save workspace", rec.Body.String())
}
