package handler

import (
	"net/http"

	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *service.CommentService
	pager    Pager
}

func NewCommentHandler(comments *service.CommentService, pager Pager) *CommentHandler {
	return &CommentHandler{comments: comments, pager: pager}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// List handles GET /tasks/:uuid/comments/, newest first.
func (h *CommentHandler) List(c *gin.Context) {
	taskID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	req, ok := h.pager.Request(c)
	if !ok {
		invalidPage(c)
		return
	}
	page, err := h.comments.List(c.Request.Context(), middleware.CurrentUser(c), taskID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(c, page, func(cm *model.Comment) CommentResponse {
		return NewCommentResponse(cm, taskID)
	}))
}

// Create handles POST /tasks/:uuid/comments/. The caller is the author.
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	if _, err := h.comments.Task(c.Request.Context(), middleware.CurrentUser(c), taskID); err != nil {
		respondError(c, err)
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	comment, err := h.comments.Create(c.Request.Context(), middleware.CurrentUser(c), taskID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCommentResponse(comment, taskID))
}

func (h *CommentHandler) Get(c *gin.Context) {
	taskID, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	commentID, ok := pathUUID(c, "comment_uuid")
	if !ok {
		return
	}
	comment, err := h.comments.Get(c.Request.Context(), middleware.CurrentUser(c), taskID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCommentResponse(comment, taskID))
}
