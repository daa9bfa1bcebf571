package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dainonaka/vsstats/api/middleware"
	"github.com/dainonaka/vsstats/internal/apperrors"
	"github.com/dainonaka/vsstats/internal/entry"
	"github.com/dainonaka/vsstats/websocket"
)

const feedLimit = 100

type EntryHandler struct {
	entries *entry.Service
	hub     *websocket.Hub
}

func NewEntryHandler(entries *entry.Service, hub *websocket.Hub) *EntryHandler {
	return &EntryHandler{entries: entries, hub: hub}
}

func (h *EntryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.IndexHandler)
	g.POST("/post", h.AddEntryHandler)
	g.POST("/edit/:id", h.EditEntryHandler)
}

// IndexHandler is the global feed: recent entries across all users,
// newest first, joined with user names.
func (h *EntryHandler) IndexHandler(c echo.Context) error {
	items, err := h.entries.ListAllRecent(feedLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"entries": items,
	})
}

type addEntryRequest struct {
	Outcome    int        `json:"outcome"`
	Opponent   string     `json:"opponent"`
	Comment    string     `json:"comment"`
	OccurredAt *time.Time `json:"occurred_at"`
}

func (h *EntryHandler) AddEntryHandler(c echo.Context) error {
	var req addEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	// the owner is always the session user, never a client-supplied id
	u := middleware.CurrentUser(c)

	when := time.Time{}
	if req.OccurredAt != nil {
		when = *req.OccurredAt
	}

	e, err := h.entries.Append(u.ID, req.Outcome, req.Opponent, req.Comment, when)
	if err != nil {
		return err
	}

	h.hub.Broadcast(entry.FeedItem{Entry: *e, Name: u.Name})

	return c.JSON(http.StatusCreated, echo.Map{
		"entry": e,
	})
}

type editEntryRequest struct {
	Command string `json:"command"`
}

func (h *EntryHandler) EditEntryHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req editEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if req.Command != "delete" {
		return apperrors.InvalidInput("unknown command")
	}

	u := middleware.CurrentUser(c)
	if err := h.entries.Delete(id, u.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"deleted": id,
	})
}
