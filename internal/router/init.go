package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/howietz/placeshare/internal/application"
	"github.com/howietz/placeshare/internal/infrastructure/geocode"
	pginfra "github.com/howietz/placeshare/internal/infrastructure/postgres"
	handlers "github.com/howietz/placeshare/internal/interface/http"
	"github.com/howietz/placeshare/internal/router/modules"
)

// Deps carries the process-wide handles owned by main. Modules receive them
// explicitly; nothing here is global.
type Deps struct {
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	Geo    geocode.Resolver
}

// InitModules builds the repositories, services and handlers and registers
// all feature modules with the router registry. Called once during startup.
func InitModules(reg *Registry, d Deps) {
	users := pginfra.NewUserRepository(d.Pool)
	places := pginfra.NewPlaceRepository(d.Pool)
	atomic := pginfra.NewTxRunner(d.Pool)

	userSvc := application.NewUserService(users, d.Logger)
	placeSvc := application.NewPlaceService(places, atomic, d.Geo, d.Logger)

	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger), d.Redis))
	reg.Add(modules.NewPlaceModule(handlers.NewPlaceHandler(placeSvc, d.Logger)))

	reg.API.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
