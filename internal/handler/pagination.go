package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Pager reads page/page_size and builds the list envelope.
type Pager struct {
	DefaultSize int
}

// Request returns false when page is not a positive integer.
func (p Pager) Request(c *gin.Context) (service.PageRequest, bool) {
	req := service.PageRequest{Number: 1, Size: p.DefaultSize}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return req, false
		}
		req.Number = n
	}
	if raw := c.Query("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			req.Size = n
		}
	}
	return req, true
}

func pageLink(c *gin.Context, number int) *string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	q := c.Request.URL.Query()
	if number <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(number))
	}
	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path, RawQuery: q.Encode()}
	s := u.String()
	return &s
}

func toPageResponse[M any, R any](c *gin.Context, page service.Page[M], convert func(*M) R) PageResponse[R] {
	resp := PageResponse[R]{Count: page.Count, Results: make([]R, 0, len(page.Items))}
	for i := range page.Items {
		resp.Results = append(resp.Results, convert(&page.Items[i]))
	}
	if page.HasNext() {
		resp.Next = pageLink(c, page.Number+1)
	}
	if page.HasPrevious() {
		resp.Previous = pageLink(c, page.Number-1)
	}
	return resp
}

func invalidPage(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Invalid page."})
}
