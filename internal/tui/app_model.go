package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/session"
)

type appModel struct {
	api      backend
	sessions session.Store
	sess     model.Session

	width  int
	height int

	view  view
	form  *form
	modal modalKind

	confirmTarget confirmTarget
	confirmFocus  confirmModalFocus

	// Dashboard state: projects + a cross-project task tally, fetched together.
	dashPhase    phase
	dashErr      string
	dashProjects []model.Project
	dashTasks    []model.Task

	projectsCtl  controller[model.Project]
	projectsList list.Model

	selectedProjectID model.ID
	project           model.Project
	tasksCtl          controller[model.Task]
	tasksList         list.Model

	membersCtl  controller[model.TeamMember]
	membersList list.Model

	spin spinner.Model

	flashText  string
	flashIsErr bool
	flashSeq   int
}

func newAppModel(c backend, st session.Store) appModel {
	m := appModel{
		api:      c,
		sessions: st,
		sess:     st.Read(),
	}
	m.projectsList = newList("Projects", "Select a project", nil)
	m.tasksList = newList("Tasks", "Tasks in this project", nil)
	m.membersList = newList("Team", "Team members", nil)

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	if st.Token() == "" {
		m.view = viewLogin
		m.form = newLoginForm()
	} else {
		// Signed in: land on the dashboard. The fetch starts from Init, so the
		// phase must already be Loading here.
		m.view = viewDashboard
		m.dashPhase = phaseLoading
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewDashboard {
		return tea.Batch(m.spin.Tick, m.fetchDashboard())
	}
	return textinput.Blink
}

func (m *appModel) resizeLists() {
	w := m.width - 4
	h := m.height - 9
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	m.projectsList.SetSize(w, h)
	m.tasksList.SetSize(w, h)
	m.membersList.SetSize(w, h)
}

func (m appModel) loadingSomething() bool {
	return m.dashPhase == phaseLoading ||
		m.projectsCtl.phase == phaseLoading ||
		m.tasksCtl.phase == phaseLoading ||
		m.membersCtl.phase == phaseLoading
}

func (m appModel) showFlash(text string, isErr bool) (appModel, tea.Cmd) {
	m.flashText = text
	m.flashIsErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

// gotoLogin is the app-level auth guard: any 401 lands here. It only
// navigates; it never clears storage (sign-out is a user action).
func (m appModel) gotoLogin() (appModel, tea.Cmd) {
	m.view = viewLogin
	m.modal = modalNone
	m.form = newLoginForm()
	m.dashPhase = phaseIdle
	m.projectsCtl = controller[model.Project]{}
	m.tasksCtl = controller[model.Task]{}
	m.membersCtl = controller[model.TeamMember]{}
	return m, textinput.Blink
}

func (m *appModel) syncProjectsList() {
	m.projectsList.SetItems(projectListItems(m.projectsCtl.items))
}

func (m *appModel) syncTasksList() {
	m.tasksList.SetItems(taskListItems(m.tasksCtl.items))
}

func (m *appModel) syncMembersList() {
	m.membersList.SetItems(memberListItems(m.membersCtl.items, m.sess.ID))
}

func (m appModel) selectedProject() (model.Project, bool) {
	if it, ok := m.projectsList.SelectedItem().(projectItem); ok {
		return it.project, true
	}
	return model.Project{}, false
}

func (m appModel) selectedTask() (model.Task, bool) {
	if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
		return it.task, true
	}
	return model.Task{}, false
}

func (m appModel) selectedMember() (model.TeamMember, bool) {
	if it, ok := m.membersList.SelectedItem().(memberItem); ok {
		return it.member, true
	}
	return model.TeamMember{}, false
}
