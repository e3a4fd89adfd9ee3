package handler

import (
	"net/http"
	"strings"

	"tasktracker/internal/middleware"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
	pager Pager
}

func NewUserHandler(users *service.UserService, pager Pager) *UserHandler {
	return &UserHandler{users: users, pager: pager}
}

// List handles GET /users/?search=.
func (h *UserHandler) List(c *gin.Context) {
	req, ok := h.pager.Request(c)
	if !ok {
		invalidPage(c)
		return
	}
	search := strings.TrimSpace(c.Query("search"))
	page, err := h.users.List(c.Request.Context(), middleware.CurrentUser(c), search, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(c, page, NewUserResponse))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(user))
}

// Me returns the authenticated caller.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, service.NewUnauthenticated(""))
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(user))
}
