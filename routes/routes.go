package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/config"
)

// SetupRoutes is the single entry point that wires up catalog, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "PING endpoint"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	SetupCatalogRoutes(r, db)
	SetupAuthRoutes(r, db, cfg)
	SetupUserRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
