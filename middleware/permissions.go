package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sizets/tabletstore-api/models"
)

// Permission names an operation class a role may perform. Gating on
// capabilities rather than on the role string keeps handler code
// ignorant of which roles exist.
type Permission string

const (
	PermManageProducts Permission = "products:manage"
	PermManageOrders   Permission = "orders:manage"
	PermManageUsers    Permission = "users:manage"
	PermViewStats      Permission = "stats:view"
)

var rolePermissions = map[models.Role][]Permission{
	models.RoleUser: {},
	models.RoleAdmin: {
		PermManageProducts,
		PermManageOrders,
		PermManageUsers,
		PermViewStats,
	},
}

// HasPermission reports whether role is allowed to perform perm.
func HasPermission(role models.Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// RequirePermission must run after RequireAuth; it rejects with 403
// when the resolved role lacks the capability.
func RequirePermission(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetString("role"))
		if !HasPermission(role, perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "message": "Access denied",
			})
			return
		}
		c.Next()
	}
}
