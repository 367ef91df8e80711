// Package perm holds the pure UI-gating predicates over a session.
//
// These decide which controls are shown, nothing more. Authorization is
// enforced server-side; a hidden button is a convenience, not a boundary.
package perm

import "taskdeck-cli/internal/model"

// CanManageTeam reports whether team-management affordances (add member,
// remove member) should be visible. Unrecognized role strings are treated as
// plain users.
func CanManageTeam(s model.Session) bool {
	return s.Role == model.RoleTenantAdmin
}

// CanRemoveMember reports whether the remove action should be shown for a
// team row. Self-removal is always hidden, independent of role.
func CanRemoveMember(s model.Session, target model.ID) bool {
	if target == s.ID {
		return false
	}
	return CanManageTeam(s)
}
