package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dainonaka/vsstats/api/middleware"
	"github.com/dainonaka/vsstats/internal/entry"
	"github.com/dainonaka/vsstats/internal/session"
	"github.com/dainonaka/vsstats/internal/stats"
	"github.com/dainonaka/vsstats/internal/user"
)

const INVALID_REQUEST = "invalid request"

const mypageEntryLimit = 100

type UserHandler struct {
	users    *user.Service
	entries  *entry.Service
	stats    *stats.Service
	sessions session.Store
}

func NewUserHandler(users *user.Service, entries *entry.Service, statsSvc *stats.Service, sessions session.Store) *UserHandler {
	return &UserHandler{users: users, entries: entries, stats: statsSvc, sessions: sessions}
}

// RegisterPublicRoutes mounts the routes reachable without a session.
func (h *UserHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.GET("/createuser", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "post name and password to register"})
	})
	e.POST("/createuser", h.CreateUserHandler)
	e.POST("/login", h.LoginHandler)
}

// RegisterRoutes mounts the session-protected routes.
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/logout", h.LogoutHandler)
	g.GET("/mypage/:id", h.MypageHandler)
	g.POST("/mypage/:id", h.MypageHandler)
}

type credentialsRequest struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	PasswordValidation string `json:"password_validation"`
}

func (h *UserHandler) CreateUserHandler(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, token, err := h.users.Register(req.Username, req.Password, req.PasswordValidation)
	if err != nil {
		return err
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user":  u,
	})
}

func (h *UserHandler) LoginHandler(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, token, err := h.users.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  u,
	})
}

func (h *UserHandler) LogoutHandler(c echo.Context) error {
	claims := middleware.SessionClaims(c)
	if claims != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := h.sessions.Revoke(c.Request().Context(), claims.RegisteredClaims.ID, ttl); err != nil {
			return err
		}
	}

	clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "logged out",
	})
}

type mypageResponse struct {
	User       string        `json:"user"`
	Entries    []entry.Entry `json:"entries"`
	TotalPoint int           `json:"total_point"`
	WinCount   int           `json:"win_count"`
	LoseCount  int           `json:"lose_count"`
	MonthStart time.Time     `json:"month_start"`
}

// MypageHandler returns a user's recent entries and aggregated figures:
// all-time total points plus win/lose counts since the first of the
// current month.
func (h *UserHandler) MypageHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	u, err := h.users.Get(id)
	if err != nil {
		return err
	}

	entries, err := h.entries.ListRecent(id, mypageEntryLimit)
	if err != nil {
		return err
	}

	total, err := h.stats.TotalPoints(id)
	if err != nil {
		return err
	}

	monthStart := stats.MonthStart(time.Now())
	wins, losses, err := h.stats.WindowCounts(id, monthStart)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mypageResponse{
		User:       u.Name,
		Entries:    entries,
		TotalPoint: total,
		WinCount:   wins,
		LoseCount:  losses,
		MonthStart: monthStart,
	})
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
