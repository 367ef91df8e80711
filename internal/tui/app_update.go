package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/perm"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case spinner.TickMsg:
		if !m.loadingSomething() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case flashDoneMsg:
		// A newer flash may have started since this timer was set.
		if msg.seq == m.flashSeq {
			m.flashText = ""
		}
		return m, nil

	case loginDoneMsg:
		return m.onLoginDone(msg)

	case registerDoneMsg:
		return m.onRegisterDone("Registration successful! Please sign in.", msg.err)

	case registerTenantDoneMsg:
		return m.onRegisterDone("Organization registered! Sign in as its admin.", msg.err)

	case dashboardLoadedMsg:
		return m.onDashboardLoaded(msg)

	case projectsLoadedMsg:
		if m.projectsCtl.apply(msg.projects, msg.err) {
			return m.gotoLogin()
		}
		m.syncProjectsList()
		return m, nil

	case projectDetailLoadedMsg:
		// Ignore answers for a project we already navigated away from.
		if msg.projectID != m.selectedProjectID {
			return m, nil
		}
		if m.tasksCtl.apply(msg.tasks, msg.err) {
			return m.gotoLogin()
		}
		if msg.err == nil {
			m.project = msg.project
		}
		m.syncTasksList()
		return m, nil

	case membersLoadedMsg:
		if m.membersCtl.apply(msg.members, msg.err) {
			return m.gotoLogin()
		}
		m.syncMembersList()
		return m, nil

	case mutationDoneMsg:
		return m.onMutationDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.form != nil {
			m.form.errText = loginErrText(msg.err)
		}
		return m, nil
	}
	if err := m.sessions.Commit(msg.resp.Token, msg.resp.Session); err != nil {
		// The API accepted us; a persistence failure only costs the next start.
		if m.sessions.Log != nil {
			m.sessions.Log.Warn("session not persisted: " + err.Error())
		}
	}
	m.sess = msg.resp.Session
	m.form = nil
	m.view = viewDashboard
	m.dashPhase = phaseLoading
	var flashCmd tea.Cmd
	m, flashCmd = m.showFlash("Welcome back, "+m.sess.DisplayName(), false)
	return m, tea.Batch(m.spin.Tick, m.fetchDashboard(), flashCmd)
}

func loginErrText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Login failed: " + err.Error()
}

func (m appModel) onRegisterDone(flash string, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		if m.form != nil {
			var apiErr *api.Error
			if errors.As(err, &apiErr) && apiErr.Message != "" {
				m.form.errText = apiErr.Message
			} else {
				m.form.errText = err.Error()
			}
		}
		return m, nil
	}
	m.view = viewLogin
	m.form = newLoginForm()
	var cmd tea.Cmd
	m, cmd = m.showFlash(flash, false)
	return m, tea.Batch(textinput.Blink, cmd)
}

func (m appModel) onDashboardLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			m.dashPhase = phaseIdle
			return m.gotoLogin()
		}
		m.dashPhase = phaseError
		m.dashErr = msg.err.Error()
		return m, nil
	}
	m.dashPhase = phaseReady
	m.dashErr = ""
	m.dashProjects = msg.projects
	m.dashTasks = msg.tasks
	return m, nil
}

func (m appModel) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			return m.gotoLogin()
		}
		var cmd tea.Cmd
		m, cmd = m.showFlash(msg.err.Error(), true)
		return m, cmd
	}
	var flashCmd tea.Cmd
	m, flashCmd = m.showFlash(msg.flash, false)
	return m, tea.Batch(flashCmd, m.spin.Tick, m.startRefetch(msg.refetch))
}

// Key routing. Modals get keys first, then the auth forms, then the views.

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.modal == modalConfirmDelete {
		return m.handleConfirmKey(msg)
	}
	if m.modal != modalNone {
		return m.handleModalFormKey(msg)
	}

	switch m.view {
	case viewLogin, viewRegister, viewRegisterTenant:
		return m.handleAuthKey(msg)
	case viewDashboard:
		return m.handleDashboardKey(msg)
	case viewProjects:
		return m.handleProjectsKey(msg)
	case viewProjectDetail:
		return m.handleProjectDetailKey(msg)
	case viewTeam:
		return m.handleTeamKey(msg)
	}
	return m, nil
}

func (m appModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusConfirm
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "esc", "n":
		m.modal = modalNone
		return m, nil
	case "y":
		return m.confirmAccepted()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmAccepted()
		}
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

// confirmAccepted fires the pending destructive call. Declining the modal
// never issues a request, so this is the only path to a delete.
func (m appModel) confirmAccepted() (tea.Model, tea.Cmd) {
	t := m.confirmTarget
	m.modal = modalNone
	var cmd tea.Cmd
	switch t.kind {
	case confirmDeleteProject:
		cmd = m.deleteProject(t.id)
	case confirmDeleteTask:
		cmd = m.deleteTask(t.id)
	case confirmRemoveMember:
		cmd = m.removeMember(t.id)
	}
	return m, cmd
}

func (m appModel) handleModalFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.modal = modalNone
		m.form = nil
		return m, nil
	}
	return m.handleFormKey(msg)
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.view != viewLogin {
			m.view = viewLogin
			m.form = newLoginForm()
			return m, textinput.Blink
		}
		return m, nil
	case "ctrl+r":
		if m.view == viewLogin {
			m.view = viewRegister
			m.form = newRegisterForm()
			return m, textinput.Blink
		}
	case "ctrl+o":
		if m.view == viewLogin {
			m.view = viewRegisterTenant
			m.form = newRegisterTenantForm()
			return m, textinput.Blink
		}
	}
	return m.handleFormKey(msg)
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		return m, nil
	}
	switch msg.String() {
	case "tab", "down":
		f.next()
		return m, nil
	case "shift+tab", "up":
		f.prev()
		return m, nil
	case "left", "right":
		if f.onToggle() {
			if msg.String() == "left" {
				f.cycleToggle(-1)
			} else {
				f.cycleToggle(1)
			}
			return m, nil
		}
	case "ctrl+s":
		return m.submitForm(f)
	case "enter":
		if f.onLastField() {
			return m.submitForm(f)
		}
		f.next()
		return m, nil
	}
	if f.focus < len(f.inputs) {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) submitForm(f *form) (tea.Model, tea.Cmd) {
	if errText := f.validate(); errText != "" {
		f.errText = errText
		return m, nil
	}
	f.errText = ""

	switch f.kind {
	case formLogin:
		return m, m.submitLogin(api.LoginRequest{
			TenantSubdomain: f.value(0),
			Email:           f.value(1),
			Password:        f.value(2),
		})
	case formRegister:
		return m, m.submitRegister(api.RegisterRequest{
			TenantSubdomain: f.value(0),
			FullName:        f.value(1),
			Email:           f.value(2),
			Password:        f.value(3),
			Role:            model.Role(f.toggleValue()),
		})
	case formRegisterTenant:
		return m, m.submitRegisterTenant(api.RegisterTenantRequest{
			TenantName:    f.value(0),
			Subdomain:     f.value(1),
			AdminFullName: f.value(2),
			AdminEmail:    f.value(3),
			AdminPassword: f.value(4),
		})
	case formNewProject:
		name, desc := f.value(0), f.value(1)
		m.modal = modalNone
		m.form = nil
		return m, m.createProject(name, desc)
	case formNewTask:
		req := api.CreateTaskRequest{
			Title:     f.value(0),
			Status:    model.TaskStatus(f.toggleValue()),
			ProjectID: m.selectedProjectID,
		}
		m.modal = modalNone
		m.form = nil
		return m, m.createTask(req)
	case formAddMember:
		req := api.CreateUserRequest{
			FullName: f.value(0),
			Email:    f.value(1),
			Password: f.value(2),
			Role:     model.Role(f.toggleValue()),
		}
		m.modal = modalNone
		m.form = nil
		return m, m.addMember(req)
	}
	return m, nil
}

// signOut clears the persisted session and returns to login. Clearing is
// best-effort; a failed removal still signs the UI out.
func (m appModel) signOut() (tea.Model, tea.Cmd) {
	if err := m.sessions.Clear(); err != nil && m.sessions.Log != nil {
		m.sessions.Log.Warn("session not cleared: " + err.Error())
	}
	m.sess = model.AnonymousSession()
	return m.gotoLogin()
}

func (m appModel) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "o":
		return m.signOut()
	case "r", "1":
		m.dashPhase = phaseLoading
		return m, tea.Batch(m.spin.Tick, m.fetchDashboard())
	case "2", "p":
		return m.gotoProjects()
	case "3", "t":
		return m.gotoTeam()
	}
	return m, nil
}

func (m appModel) gotoProjects() (tea.Model, tea.Cmd) {
	m.view = viewProjects
	m.projectsCtl.startLoad()
	return m, tea.Batch(m.spin.Tick, m.fetchProjects())
}

func (m appModel) gotoTeam() (tea.Model, tea.Cmd) {
	m.view = viewTeam
	m.membersCtl.startLoad()
	return m, tea.Batch(m.spin.Tick, m.fetchMembers())
}

func (m appModel) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.projectsList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.projectsList, cmd = m.projectsList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc", "1":
		m.view = viewDashboard
		return m, nil
	case "3", "t":
		return m.gotoTeam()
	case "r":
		m.projectsCtl.startLoad()
		return m, tea.Batch(m.spin.Tick, m.fetchProjects())
	case "n":
		m.modal = modalNewProject
		m.form = newProjectForm()
		return m, textinput.Blink
	case "enter":
		if p, ok := m.selectedProject(); ok {
			m.view = viewProjectDetail
			m.selectedProjectID = p.ID
			m.project = p
			m.tasksCtl.startLoad()
			m.tasksList.SetItems(nil)
			return m, tea.Batch(m.spin.Tick, m.fetchProjectDetail(p.ID))
		}
		return m, nil
	case "d":
		if p, ok := m.selectedProject(); ok {
			m.modal = modalConfirmDelete
			m.confirmFocus = confirmFocusCancel
			m.confirmTarget = confirmTarget{kind: confirmDeleteProject, id: p.ID, label: p.Name}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.projectsList, cmd = m.projectsList.Update(msg)
	return m, cmd
}

func (m appModel) handleProjectDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tasksList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.tasksList, cmd = m.tasksList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		return m.gotoProjects()
	case "r":
		m.tasksCtl.startLoad()
		return m, tea.Batch(m.spin.Tick, m.fetchProjectDetail(m.selectedProjectID))
	case "n":
		m.modal = modalNewTask
		m.form = newTaskForm()
		return m, textinput.Blink
	case "s", "enter":
		if t, ok := m.selectedTask(); ok {
			return m, m.cycleTaskStatus(t)
		}
		return m, nil
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.modal = modalConfirmDelete
			m.confirmFocus = confirmFocusCancel
			m.confirmTarget = confirmTarget{kind: confirmDeleteTask, id: t.ID, label: t.Title}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(msg)
	return m, cmd
}

func (m appModel) handleTeamKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.membersList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.membersList, cmd = m.membersList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc", "1":
		m.view = viewDashboard
		return m, nil
	case "2", "p":
		return m.gotoProjects()
	case "r":
		m.membersCtl.startLoad()
		return m, tea.Batch(m.spin.Tick, m.fetchMembers())
	case "a":
		if !perm.CanManageTeam(m.sess) {
			return m, nil
		}
		m.modal = modalAddMember
		m.form = newMemberForm()
		return m, textinput.Blink
	case "d":
		member, ok := m.selectedMember()
		if !ok || !perm.CanRemoveMember(m.sess, member.ID) {
			return m, nil
		}
		m.modal = modalConfirmDelete
		m.confirmFocus = confirmFocusCancel
		m.confirmTarget = confirmTarget{kind: confirmRemoveMember, id: member.ID, label: member.FullName}
		return m, nil
	}
	var cmd tea.Cmd
	m.membersList, cmd = m.membersList.Update(msg)
	return m, cmd
}
