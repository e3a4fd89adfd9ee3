package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tasktracker/internal/auth"
	"tasktracker/internal/handler"
	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/repository/memory"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router *gin.Engine
	store  *memory.Store
	tokens *auth.TokenManager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memory.NewStore()
	tokens := auth.NewTokenManager(auth.Config{
		Secret:     "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	})
	pager := handler.Pager{DefaultSize: 20}
	routes := handler.Routes{
		Auth:     handler.NewAuthHandler(service.NewAuthService(st.Users(), tokens)),
		Tasks:    handler.NewTaskHandler(service.NewTaskService(st.Tasks(), st.Users()), pager),
		Comments: handler.NewCommentHandler(service.NewCommentService(st.Comments(), st.Tasks()), pager),
		Users:    handler.NewUserHandler(service.NewUserService(st.Users()), pager),
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	routes.Register(r.Group("/api"), middleware.JWTAuthMiddleware(tokens, st.Users()))
	return &testAPI{router: r, store: st, tokens: tokens}
}

// user creates an active account and returns it with an access token.
func (a *testAPI) user(t *testing.T, username string) (*model.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	u := &model.User{
		Username:       username,
		Email:          username + "@example.com",
		FirstName:      strings.ToUpper(username[:1]) + username[1:],
		HashedPassword: hash,
		IsActive:       true,
	}
	require.NoError(t, a.store.Users().Create(context.Background(), u))
	token, err := a.tokens.GenerateToken(u.UUID, auth.AccessToken)
	require.NoError(t, err)
	return u, token
}

// do sends body as JSON; a string body is sent verbatim.
func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

func (a *testAPI) createTask(t *testing.T, token string, body any) handler.TaskResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/tasks/", token, body)
	requireStatus(t, w, http.StatusCreated)
	return decode[handler.TaskResponse](t, w)
}
