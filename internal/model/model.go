package model

import (
	"bytes"
	"strings"
	"time"
)

type Role string

const (
	RoleUser        Role = "user"
	RoleTenantAdmin Role = "tenant_admin"
)

// ID is an opaque server-assigned identifier. Some backends emit ids as JSON
// numbers and others as strings; we normalize both to a string so the client
// never has to care.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' && len(b) >= 2 {
		*id = ID(b[1 : len(b)-1])
		return nil
	}
	*id = ID(b)
	return nil
}

func (id ID) String() string { return string(id) }

// Session is the client-held snapshot of the authenticated actor: identity,
// tenant context and role. The role only drives which controls are shown;
// enforcement happens server-side.
type Session struct {
	ID              ID     `json:"id,omitempty"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	TenantSubdomain string `json:"tenantSubdomain,omitempty"`
}

// AnonymousSession is the well-defined fallback used whenever persisted
// session data is absent or unreadable.
func AnonymousSession() Session {
	return Session{Role: RoleUser}
}

// DisplayName returns something renderable even for partial profiles.
func (s Session) DisplayName() string {
	if n := strings.TrimSpace(s.FullName); n != "" {
		return n
	}
	return "User"
}

type ProjectStatus string

const ProjectStatusActive ProjectStatus = "active"

// Creator is a denormalized, read-only reference supplied by the server.
type Creator struct {
	ID       ID     `json:"id"`
	FullName string `json:"fullName"`
}

type Project struct {
	ID          ID            `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Creator     *Creator      `json:"creator,omitempty"`
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// NextTaskStatus cycles todo -> in_progress -> done -> todo. Unknown values
// restart the cycle.
func NextTaskStatus(s TaskStatus) TaskStatus {
	switch s {
	case TaskStatusTodo:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

type Task struct {
	ID        ID         `json:"id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	ProjectID ID         `json:"projectId"`
}

// TeamMember is a tenant-scoped user row; the list arrives already scoped to
// the acting session's tenant.
type TeamMember struct {
	ID        ID        `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
