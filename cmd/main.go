package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/dainonaka/vsstats/api/middleware"
	v1 "github.com/dainonaka/vsstats/api/v1"
	"github.com/dainonaka/vsstats/internal/entry"
	"github.com/dainonaka/vsstats/internal/session"
	"github.com/dainonaka/vsstats/internal/stats"
	"github.com/dainonaka/vsstats/internal/user"
	"github.com/dainonaka/vsstats/pkg/db"
	"github.com/dainonaka/vsstats/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found, using system values")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	gdb, err := db.Connect()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := gdb.AutoMigrate(&user.User{}, &entry.Entry{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := db.ConnectRedis(context.Background())
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	users := user.NewGormRepository(gdb)
	sessions := session.NewRedisStore(rdb)
	userService := user.NewService(users)
	entryService := entry.NewService(entry.NewGormRepository(gdb))
	statsService := stats.NewService(stats.NewGormRepository(gdb))
	hub := websocket.NewHub()

	e := echo.New()
	e.HTTPErrorHandler = v1.HTTPErrorHandler(e)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	userHandler := v1.NewUserHandler(userService, entryService, statsService, sessions)
	entryHandler := v1.NewEntryHandler(entryService, hub)

	userHandler.RegisterPublicRoutes(e)
	e.GET("/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "post credentials to log in"})
	})
	e.GET("/feed", websocket.FeedHandler(hub, sessions))

	protected := e.Group("")
	protected.Use(api_middleware.SetupJWTMiddleware())
	protected.Use(api_middleware.ResolveUser(users, sessions))
	entryHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
