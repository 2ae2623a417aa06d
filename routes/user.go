package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/config"
	cartControllers "github.com/sizets/tabletstore-api/controllers/cart"
	orderControllers "github.com/sizets/tabletstore-api/controllers/order"
	userControllers "github.com/sizets/tabletstore-api/controllers/user"
	"github.com/sizets/tabletstore-api/middleware"
)

// SetupUserRoutes registers all credential-gated user endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authed := r.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		// ──────────────── Shopping Cart ────────────────
		cart := authed.Group("/cart")
		{
			cart.POST("/add", cartControllers.AddItemHandler(db))
			cart.GET("", cartControllers.GetCartHandler(db))
			cart.PUT("/update", cartControllers.UpdateItemHandler(db))
			cart.DELETE("/clear", cartControllers.ClearCartHandler(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		authed.POST("/checkout", orderControllers.CheckoutHandler(db, cfg.DeliveryFee))

		orders := authed.Group("/orders")
		{
			orders.GET("", orderControllers.GetUserOrdersHandler(db))
			orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
			orders.DELETE("/:id", orderControllers.CancelOrderHandler(db))
			orders.PUT("/:id/status",
				middleware.RequirePermission(middleware.PermManageOrders),
				orderControllers.UpdateOrderStatusHandler(db))
		}

		// ──────────────── Profile ────────────────
		authed.GET("/me", userControllers.Me(db))
		authed.PUT("/profile", userControllers.UpdateProfile(db))
	}
}
