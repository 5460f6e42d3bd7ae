package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/eduflow/eduflow-api/internal/config"
	"github.com/eduflow/eduflow-api/internal/database"
	"github.com/eduflow/eduflow-api/internal/handler"
	"github.com/eduflow/eduflow-api/internal/middleware"
	"github.com/eduflow/eduflow-api/internal/queue"
	"github.com/eduflow/eduflow-api/internal/repository"
	"github.com/eduflow/eduflow-api/internal/router"
	queue_publisher "github.com/eduflow/eduflow-api/internal/service"
)

func main() {
	cfg := config.Load()

	// Application pool: reads, RLS enforced.
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Service pool: privileged mutations, RLS bypassed.
	serviceDB, err := database.OpenService(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer serviceDB.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response caching disabled")
	}

	// Audit consumer runs for the process lifetime, reconnecting on its own.
	go func() {
		if err := queue.StartCourseConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	courseH := handler.NewCourseHandler(
		repository.NewCourseRepo(db),
		repository.NewLessonRepo(db),
	)
	adminH := handler.NewAdminHandler(
		repository.NewCourseRepo(serviceDB),
		repository.NewLessonRepo(serviceDB),
		repository.NewStatsRepo(db),
	)
	adminH.Publish = queue_publisher.PublishCourseCreated
	authH := handler.NewAuthHandler(cfg)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// The gate runs ahead of every registered route.
	router.RegisterGate(e, middleware.GateConfig{
		Secret:   cfg.JWTSecret,
		LoginURL: cfg.LoginURL,
	})
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterAPI(e, courseH, adminH,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
