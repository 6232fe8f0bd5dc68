package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/howietz/placeshare/internal/interface/http"
	"github.com/howietz/placeshare/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes under /api/users.
// Signup and login carry per-IP rate limits; a nil redis client disables them.
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath()) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath())  // 10 req/min per IP

	g := rg.Group("/users")
	{
		g.GET("", m.Handler.List)
		g.POST("/signup", signupLimiter, m.Handler.Signup)
		g.POST("/login", loginLimiter, m.Handler.Login)
	}
}
