package handler

import (
	"net/http"
	"strings"

	"tasktracker/internal/middleware"
	"tasktracker/internal/patch"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks *service.TaskService
	pager Pager
}

func NewTaskHandler(tasks *service.TaskService, pager Pager) *TaskHandler {
	return &TaskHandler{tasks: tasks, pager: pager}
}

// CreateTaskRequest is the body of POST /tasks/.
type CreateTaskRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	AssigneeUUID *string `json:"assignee_uuid"`
	IsCompleted  bool    `json:"is_completed"`
}

// UpdateTaskRequest is the body of PATCH and PUT. Absent fields are left
// untouched; "assignee_uuid": null unassigns.
type UpdateTaskRequest struct {
	Title        patch.Field[string] `json:"title"`
	Description  patch.Field[string] `json:"description"`
	AssigneeUUID patch.Field[string] `json:"assignee_uuid"`
	IsCompleted  patch.Field[bool]   `json:"is_completed"`
}

func parseUUIDField(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.NewValidationError(field, "Must be a valid UUID.")
	}
	return id, nil
}

// pathUUID answers 404 itself when the segment is not a UUID.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		notFound(c)
		return uuid.Nil, false
	}
	return id, true
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// parseOrdering reads "field,-other". Unknown fields are dropped.
func parseOrdering(raw string) []repository.Order {
	var orders []repository.Order
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if _, ok := repository.TaskOrderColumns[part]; !ok {
			continue
		}
		orders = append(orders, repository.Order{Field: part, Desc: desc})
	}
	return orders
}

func (h *TaskHandler) filter(c *gin.Context) (service.TaskFilter, error) {
	var f service.TaskFilter
	if raw := c.Query("creator"); raw != "" {
		id, err := parseUUIDField("creator", raw)
		if err != nil {
			return f, err
		}
		f.CreatorUUID = &id
	}
	if raw := c.Query("assignee"); raw != "" {
		id, err := parseUUIDField("assignee", raw)
		if err != nil {
			return f, err
		}
		f.AssigneeUUID = &id
	}
	if raw := c.Query("is_completed"); raw != "" {
		v, ok := parseBool(raw)
		if !ok {
			return f, service.NewValidationError("is_completed", "Select a valid choice.")
		}
		f.IsCompleted = &v
	}
	f.Search = strings.TrimSpace(c.Query("search"))
	if raw := c.Query("ordering"); raw != "" {
		f.Ordering = parseOrdering(raw)
	}
	return f, nil
}

// List handles GET /tasks/.
func (h *TaskHandler) List(c *gin.Context) {
	f, err := h.filter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	req, ok := h.pager.Request(c)
	if !ok {
		invalidPage(c)
		return
	}
	f.Page = req

	page, err := h.tasks.List(c.Request.Context(), middleware.CurrentUser(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(c, page, NewTaskResponse))
}

// Create handles POST /tasks/. The caller becomes the creator.
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	in := service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	}
	if req.AssigneeUUID != nil {
		id, err := parseUUIDField("assignee_uuid", *req.AssigneeUUID)
		if err != nil {
			respondError(c, err)
			return
		}
		in.AssigneeUUID = &id
	}

	task, err := h.tasks.Create(c.Request.Context(), middleware.CurrentUser(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewTaskResponse(task))
}

// Get handles GET /tasks/:uuid/.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	task, err := h.tasks.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTaskResponse(task))
}

// Patch handles PATCH /tasks/:uuid/.
func (h *TaskHandler) Patch(c *gin.Context) {
	h.update(c, false)
}

// Put handles PUT /tasks/:uuid/. It differs from Patch only in that the
// title must be sent.
func (h *TaskHandler) Put(c *gin.Context) {
	h.update(c, true)
}

func (h *TaskHandler) update(c *gin.Context, full bool) {
	id, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	if full && !req.Title.Set {
		respondError(c, service.NewValidationError("title", "This field is required."))
		return
	}

	p := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	}
	switch {
	case req.AssigneeUUID.Null:
		p.AssigneeUUID = patch.Null[uuid.UUID]()
	case req.AssigneeUUID.Set:
		assignee, err := parseUUIDField("assignee_uuid", req.AssigneeUUID.Value)
		if err != nil {
			respondError(c, err)
			return
		}
		p.AssigneeUUID = patch.Of(assignee)
	}

	task, err := h.tasks.Update(c.Request.Context(), middleware.CurrentUser(c), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /tasks/:uuid/.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
