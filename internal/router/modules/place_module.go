package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/howietz/placeshare/internal/interface/http"
)

// PlaceModule wires place HTTP handlers into routes under /api/places.
type PlaceModule struct {
	Handler *handlers.PlaceHandler
}

func NewPlaceModule(h *handlers.PlaceHandler) *PlaceModule {
	return &PlaceModule{Handler: h}
}

func (m *PlaceModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/places")
	{
		g.GET("/:pid", m.Handler.GetByID)
		g.GET("/user/:uid", m.Handler.GetByUser)
		g.POST("", m.Handler.Create)
		g.PATCH("/:pid", m.Handler.Update)
		g.DELETE("/:pid", m.Handler.Delete)
	}
}
