package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/config"
	adminControllers "github.com/sizets/tabletstore-api/controllers/admin"
	orderControllers "github.com/sizets/tabletstore-api/controllers/order"
	productControllers "github.com/sizets/tabletstore-api/controllers/product"
	userControllers "github.com/sizets/tabletstore-api/controllers/user"
	"github.com/sizets/tabletstore-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Every group is
// gated by the capability its operations need, not by a raw role
// comparison.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		admin.GET("/stats",
			middleware.RequirePermission(middleware.PermViewStats),
			adminControllers.GetStats(db))

		// ─────────── User Management ───────────
		users := admin.Group("/users")
		users.Use(middleware.RequirePermission(middleware.PermManageUsers))
		{
			users.GET("", userControllers.GetAllUsers(db))
			users.POST("", userControllers.CreateUser(db, cfg))
			users.PUT("/:id", userControllers.UpdateUser(db))
			users.DELETE("/:id", userControllers.DeleteUser(db))
		}

		// ─────────── Order Management ───────────
		orders := admin.Group("/orders")
		orders.Use(middleware.RequirePermission(middleware.PermManageOrders))
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(db))
			orders.GET("/ws", orderControllers.OrderFeedHandler)
			orders.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		}

		// ─────────── Product Management ───────────
		products := admin.Group("/products")
		products.Use(middleware.RequirePermission(middleware.PermManageProducts))
		{
			products.POST("", productControllers.CreateProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeleteProduct(db))
			products.GET("/export", productControllers.ExportProducts(db))
		}
	}
}
