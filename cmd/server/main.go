package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/config"
	"github.com/mzali/radio-booking/internal/handler"
	"github.com/mzali/radio-booking/internal/middleware"
	"github.com/mzali/radio-booking/internal/publisher"
	"github.com/mzali/radio-booking/internal/repository"
	"github.com/mzali/radio-booking/internal/router"
	"github.com/mzali/radio-booking/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment
	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; sessions in memory, rate limiting disabled")
	}

	// One shared client for all three remote collections. The bearer
	// credential is read fresh from each request's context, never cached.
	client := repository.NewClient(cfg.APIBaseURL, auth.ContextTokenSource{}, cfg.APITimeout)
	sessions := session.New(rdb, cfg.SessionTTL)

	h := router.Handlers{
		Calendar: &handler.CalendarHandler{
			Sessions:  sessions,
			Shows:     repository.NewShows(client),
			Classes:   repository.NewClassNames(client),
			Producers: repository.NewProducers(client),
			Events:    publisher.New(cfg.AMQPURL),
			Now:       time.Now,
		},
		Classes:   &handler.ReferenceHandler{Store: repository.NewClassNames(client), Label: "class name"},
		Producers: &handler.ReferenceHandler{Store: repository.NewProducers(client), Label: "producer"},
		Admin:     &handler.AdminHandler{Sessions: sessions},
	}

	e := echo.New()
	rl := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	router.Register(e, cfg.JWTSecret, rl, h)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
