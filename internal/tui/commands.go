package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"
)

// Fetches.

func (m appModel) fetchDashboard() tea.Cmd {
	c := m.api
	return func() tea.Msg {
		projects, err := c.ListProjects(context.Background())
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		tasks, err := c.ListTasks(context.Background(), "")
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{projects: projects, tasks: tasks}
	}
}

func (m appModel) fetchProjects() tea.Cmd {
	c := m.api
	return func() tea.Msg {
		projects, err := c.ListProjects(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m appModel) fetchProjectDetail(id model.ID) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		project, err := c.GetProject(context.Background(), id)
		if err != nil {
			return projectDetailLoadedMsg{projectID: id, err: err}
		}
		tasks, err := c.ListTasks(context.Background(), id)
		if err != nil {
			return projectDetailLoadedMsg{projectID: id, err: err}
		}
		return projectDetailLoadedMsg{projectID: id, project: project, tasks: tasks}
	}
}

func (m appModel) fetchMembers() tea.Cmd {
	c := m.api
	return func() tea.Msg {
		members, err := c.ListUsers(context.Background())
		return membersLoadedMsg{members: members, err: err}
	}
}

// startRefetch flips the target list back to Loading and returns its fetch.
// Mutations never patch local state; the server's answer replaces it.
func (m *appModel) startRefetch(t refetchTarget) tea.Cmd {
	switch t {
	case refetchProjects:
		m.projectsCtl.startLoad()
		return m.fetchProjects()
	case refetchProjectDetail:
		m.tasksCtl.startLoad()
		return m.fetchProjectDetail(m.selectedProjectID)
	case refetchMembers:
		m.membersCtl.startLoad()
		return m.fetchMembers()
	case refetchDashboard:
		m.dashPhase = phaseLoading
		return m.fetchDashboard()
	}
	return nil
}

// Auth.

func (m appModel) submitLogin(req api.LoginRequest) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		resp, err := c.Login(context.Background(), req)
		return loginDoneMsg{resp: resp, err: err}
	}
}

func (m appModel) submitRegister(req api.RegisterRequest) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		return registerDoneMsg{err: c.Register(context.Background(), req)}
	}
}

func (m appModel) submitRegisterTenant(req api.RegisterTenantRequest) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		return registerTenantDoneMsg{err: c.RegisterTenant(context.Background(), req)}
	}
}

// Mutations. Each completes with a mutationDoneMsg carrying the flash text and
// which list to resync.

func (m appModel) createProject(name, description string) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		_, err := c.CreateProject(context.Background(), name, description)
		return mutationDoneMsg{flash: "Project created", err: err, refetch: refetchProjects}
	}
}

func (m appModel) deleteProject(id model.ID) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		err := c.DeleteProject(context.Background(), id)
		return mutationDoneMsg{flash: "Project deleted", err: err, refetch: refetchProjects}
	}
}

func (m appModel) createTask(req api.CreateTaskRequest) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		_, err := c.CreateTask(context.Background(), req)
		return mutationDoneMsg{flash: "Task created", err: err, refetch: refetchProjectDetail}
	}
}

func (m appModel) cycleTaskStatus(t model.Task) tea.Cmd {
	c := m.api
	next := model.NextTaskStatus(t.Status)
	return func() tea.Msg {
		_, err := c.SetTaskStatus(context.Background(), t.ID, next)
		return mutationDoneMsg{flash: "Task moved to " + string(next), err: err, refetch: refetchProjectDetail}
	}
}

func (m appModel) deleteTask(id model.ID) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		err := c.DeleteTask(context.Background(), id)
		return mutationDoneMsg{flash: "Task deleted", err: err, refetch: refetchProjectDetail}
	}
}

func (m appModel) addMember(req api.CreateUserRequest) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		_, err := c.CreateUser(context.Background(), req)
		return mutationDoneMsg{flash: "Member added", err: err, refetch: refetchMembers}
	}
}

func (m appModel) removeMember(id model.ID) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		err := c.DeleteUser(context.Background(), id)
		return mutationDoneMsg{flash: "Member removed", err: err, refetch: refetchMembers}
	}
}
