package middleware

import (
	"testing"

	"github.com/sizets/tabletstore-api/models"
)

func TestHasPermission(t *testing.T) {
	adminPerms := []Permission{PermManageProducts, PermManageOrders, PermManageUsers, PermViewStats}

	for _, p := range adminPerms {
		if !HasPermission(models.RoleAdmin, p) {
			t.Errorf("admin should have %q", p)
		}
		if HasPermission(models.RoleUser, p) {
			t.Errorf("user should not have %q", p)
		}
	}

	if HasPermission(models.Role("guest"), PermViewStats) {
		t.Error("unknown role should have no permissions")
	}
}
