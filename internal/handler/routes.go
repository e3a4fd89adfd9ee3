package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Routes groups the API handlers mounted under /api.
type Routes struct {
	Auth     *AuthHandler
	Tasks    *TaskHandler
	Comments *CommentHandler
	Users    *UserHandler
}

// handle registers path both with and without its trailing slash.
func handle(g gin.IRoutes, method, path string, h gin.HandlerFunc) {
	path = strings.TrimSuffix(path, "/")
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}

func (r Routes) Register(api *gin.RouterGroup, authenticated gin.HandlerFunc) {
	handle(api, http.MethodPost, "/auth/register/", r.Auth.Register)
	handle(api, http.MethodPost, "/auth/token/", r.Auth.Token)
	handle(api, http.MethodPost, "/auth/token/refresh/", r.Auth.Refresh)

	protected := api.Group("/")
	protected.Use(authenticated)
	{
		handle(protected, http.MethodGet, "/users/", r.Users.List)
		handle(protected, http.MethodGet, "/users/me/", r.Users.Me)
		handle(protected, http.MethodGet, "/users/:uuid/", r.Users.Get)

		handle(protected, http.MethodGet, "/tasks/", r.Tasks.List)
		handle(protected, http.MethodPost, "/tasks/", r.Tasks.Create)
		handle(protected, http.MethodGet, "/tasks/:uuid/", r.Tasks.Get)
		handle(protected, http.MethodPatch, "/tasks/:uuid/", r.Tasks.Patch)
		handle(protected, http.MethodPut, "/tasks/:uuid/", r.Tasks.Put)
		handle(protected, http.MethodDelete, "/tasks/:uuid/", r.Tasks.Delete)

		handle(protected, http.MethodGet, "/tasks/:uuid/comments/", r.Comments.List)
		handle(protected, http.MethodPost, "/tasks/:uuid/comments/", r.Comments.Create)
		handle(protected, http.MethodGet, "/tasks/:uuid/comments/:comment_uuid/", r.Comments.Get)
	}
}
