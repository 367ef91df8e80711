package tui

import (
	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewRegisterTenant
	viewDashboard
	viewProjects
	viewProjectDetail
	viewTeam
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewProject
	modalNewTask
	modalAddMember
	modalConfirmDelete
)

type confirmKind int

const (
	confirmDeleteProject confirmKind = iota
	confirmDeleteTask
	confirmRemoveMember
)

type confirmTarget struct {
	kind  confirmKind
	id    model.ID
	label string
}

// refetchTarget names which list to resync after a successful mutation.
type refetchTarget int

const (
	refetchNone refetchTarget = iota
	refetchProjects
	refetchProjectDetail
	refetchMembers
	refetchDashboard
)

type loginDoneMsg struct {
	resp api.LoginResponse
	err  error
}

type registerDoneMsg struct{ err error }

type registerTenantDoneMsg struct{ err error }

type dashboardLoadedMsg struct {
	projects []model.Project
	tasks    []model.Task
	err      error
}

type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

type projectDetailLoadedMsg struct {
	projectID model.ID
	project   model.Project
	tasks     []model.Task
	err       error
}

type membersLoadedMsg struct {
	members []model.TeamMember
	err     error
}

// mutationDoneMsg is the shared completion message for every create/update/
// delete. Success flashes and triggers a wholesale refetch; failure flashes
// the error and leaves prior state untouched.
type mutationDoneMsg struct {
	flash   string
	err     error
	refetch refetchTarget
}

type flashDoneMsg struct{ seq int }
