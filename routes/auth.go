package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sizets/tabletstore-api/config"
	authControllers "github.com/sizets/tabletstore-api/controllers/auth"
	"github.com/sizets/tabletstore-api/middleware"
)

// SetupAuthRoutes registers the identity lifecycle endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.POST("/register", authControllers.Register(db, cfg))
	r.POST("/login", authControllers.Login(db, cfg))
	r.POST("/forgot-password", authControllers.ForgotPassword(db))
	r.POST("/reset-password", authControllers.ResetPassword(db, cfg))

	r.GET("/logout", middleware.RequireAuth(cfg.JWTSecret), authControllers.Logout())
}
