package handler_test

import (
	"net/http"
	"testing"

	"tasktracker/internal/handler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentHandler(t *testing.T) {
	api := newTestAPI(t)
	_, johnToken := api.user(t, "john_doe")
	bob, bobToken := api.user(t, "bob_wilson")
	task := api.createTask(t, johnToken, map[string]any{"title": "Discuss"})
	path := "/api/tasks/" + task.UUID.String() + "/comments/"

	var created []handler.CommentResponse
	for _, text := range []string{"first", "second"} {
		w := api.do(t, http.MethodPost, path, bobToken, map[string]any{"text": text})
		requireStatus(t, w, http.StatusCreated)
		created = append(created, decode[handler.CommentResponse](t, w))
	}
	assert.Equal(t, task.UUID, created[0].TaskUUID)
	assert.Equal(t, bob.UUID, created[0].Author.UUID)
	assert.Equal(t, "first", created[0].Text)

	w := api.do(t, http.MethodGet, path, johnToken, nil)
	requireStatus(t, w, http.StatusOK)
	page := decode[handler.PageResponse[handler.CommentResponse]](t, w)
	assert.EqualValues(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "second", page.Results[0].Text)
	assert.Equal(t, task.UUID, page.Results[0].TaskUUID)

	w = api.do(t, http.MethodGet, path+created[0].UUID.String()+"/", johnToken, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "first", decode[handler.CommentResponse](t, w).Text)

	w = api.do(t, http.MethodGet, path+uuid.NewString()+"/", johnToken, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestCommentHandler_Errors(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.user(t, "john_doe")
	task := api.createTask(t, token, map[string]any{"title": "Discuss"})
	other := api.createTask(t, token, map[string]any{"title": "Elsewhere"})
	path := "/api/tasks/" + task.UUID.String() + "/comments/"

	w := api.do(t, http.MethodPost, path, token, map[string]any{"text": "  "})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, decode[handler.ErrorResponse](t, w).Errors, "text")

	w = api.do(t, http.MethodPost, path, token, map[string]any{})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, []string{"This field is required."}, decode[handler.ErrorResponse](t, w).Errors["text"])

	missing := "/api/tasks/" + uuid.NewString() + "/comments/"
	requireStatus(t, api.do(t, http.MethodGet, missing, token, nil), http.StatusNotFound)
	requireStatus(t, api.do(t, http.MethodPost, missing, token, map[string]any{"text": "lost"}), http.StatusNotFound)
	// an unknown task wins over a bad body
	requireStatus(t, api.do(t, http.MethodPost, missing, token, nil), http.StatusNotFound)
	requireStatus(t, api.do(t, http.MethodPost, missing, token, map[string]any{}), http.StatusNotFound)

	// a comment is only reachable under its own task
	w = api.do(t, http.MethodPost, path, token, map[string]any{"text": "here"})
	requireStatus(t, w, http.StatusCreated)
	comment := decode[handler.CommentResponse](t, w)
	wrong := "/api/tasks/" + other.UUID.String() + "/comments/" + comment.UUID.String() + "/"
	requireStatus(t, api.do(t, http.MethodGet, wrong, token, nil), http.StatusNotFound)

	// deleting the task removes its discussion
	requireStatus(t, api.do(t, http.MethodDelete, "/api/tasks/"+task.UUID.String()+"/", token, nil), http.StatusNoContent)
	requireStatus(t, api.do(t, http.MethodGet, path, token, nil), http.StatusNotFound)
}
