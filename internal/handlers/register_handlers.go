package handlers

import (
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the command bridge routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerOpsRoutes(r)
	registerCommandRoutes(r, services.Inventory)
}

// RegisterScreenRoutes sets up the inventory screen routes
func RegisterScreenRoutes(r *gin.Engine, screens *portssvc.ScreenContainer) {
	registerOpsRoutes(r)
	registerScreenRoutes(r, screens.Screen)
}

func registerOpsRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
