package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guhan-3/inflate/internal/config"
	httpx "github.com/Guhan-3/inflate/internal/http"
	"github.com/Guhan-3/inflate/internal/http/handlers"
	"github.com/Guhan-3/inflate/internal/http/middleware"
)

// Run builds the dependency graph and serves the HTTP API
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}

	accountH := handlers.NewAccountHandlers(c.AccountSvc)
	jwtMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(accountH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
