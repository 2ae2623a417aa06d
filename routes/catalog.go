package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/sizets/tabletstore-api/controllers/product"
)

// SetupCatalogRoutes registers the public "/tablets" reads.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	tablets := r.Group("/tablets")
	{
		tablets.GET("", productControllers.GetTablets(db))
		tablets.GET("/bestsellers", productControllers.GetBestsellers(db))
		tablets.GET("/search", productControllers.SearchTablets(db))
		tablets.GET("/category/:category", productControllers.GetTabletsByCategory(db))
		tablets.GET("/:id", productControllers.GetTabletByID(db))
	}
}
