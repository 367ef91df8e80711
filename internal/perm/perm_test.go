package perm

import (
	"testing"

	"taskdeck-cli/internal/model"
)

func TestCanManageTeam(t *testing.T) {
	cases := []struct {
		role model.Role
		want bool
	}{
		{model.RoleTenantAdmin, true},
		{model.RoleUser, false},
		{"", false},
		{"admin", false},
		{"TENANT_ADMIN", false},
		{"superuser", false},
	}
	for _, tc := range cases {
		got := CanManageTeam(model.Session{Role: tc.role})
		if got != tc.want {
			t.Fatalf("CanManageTeam(role=%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestCanRemoveMember_SelfIsAlwaysHidden(t *testing.T) {
	for _, role := range []model.Role{model.RoleUser, model.RoleTenantAdmin, "weird"} {
		s := model.Session{ID: "7", Role: role}
		if CanRemoveMember(s, "7") {
			t.Fatalf("self-removal visible for role %q", role)
		}
	}
}

func TestCanRemoveMember_OthersRequireAdmin(t *testing.T) {
	admin := model.Session{ID: "1", Role: model.RoleTenantAdmin}
	user := model.Session{ID: "1", Role: model.RoleUser}

	if !CanRemoveMember(admin, "2") {
		t.Fatalf("admin should be able to remove another member")
	}
	if CanRemoveMember(user, "2") {
		t.Fatalf("plain user should not see remove actions")
	}
}
