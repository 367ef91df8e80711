package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/perm"
)

func (m appModel) View() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	h := m.height
	if h <= 0 {
		h = 24
	}

	header := m.renderHeader(w)
	footer := m.renderFooter(w)
	bodyHeight := h - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.modal != modalNone {
		body = lipgloss.Place(w, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderModal(w))
	} else {
		body = m.renderBody(w, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m appModel) renderHeader(width int) string {
	title := styleTitle().Render("taskdeck")
	crumb := styleMuted().Render(" · " + m.breadcrumb())

	right := ""
	if m.view >= viewDashboard {
		right = m.sess.DisplayName() + " " + roleBadge(m.sess.Role)
		if m.sess.TenantSubdomain != "" {
			right += styleMuted().Render(" @" + m.sess.TenantSubdomain)
		}
	}

	left := title + crumb
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	rule := styleMuted().Render(strings.Repeat("─", max(1, width)))
	return line + "\n" + rule
}

func (m appModel) breadcrumb() string {
	switch m.view {
	case viewLogin:
		return "sign in"
	case viewRegister:
		return "register"
	case viewRegisterTenant:
		return "new organization"
	case viewDashboard:
		return "dashboard"
	case viewProjects:
		return "projects"
	case viewProjectDetail:
		if m.project.Name != "" {
			return "projects · " + m.project.Name
		}
		return "projects"
	case viewTeam:
		return "team"
	}
	return ""
}

func (m appModel) renderBody(width, height int) string {
	var b string
	switch m.view {
	case viewLogin, viewRegister, viewRegisterTenant:
		b = m.renderAuth(width)
	case viewDashboard:
		b = m.renderDashboard(width)
	case viewProjects:
		b = m.renderProjects(width)
	case viewProjectDetail:
		b = m.renderProjectDetail(width)
	case viewTeam:
		b = m.renderTeam(width)
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(b)
}

func (m appModel) renderAuth(width int) string {
	var title string
	switch m.view {
	case viewLogin:
		title = "Sign in to your workspace"
	case viewRegister:
		title = "Create an account"
	case viewRegisterTenant:
		title = "Register a new organization"
	}
	content := styleTitle().Render(title) + "\n\n" + m.renderForm(width)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m appModel) renderForm(width int) string {
	f := m.form
	if f == nil {
		return ""
	}
	var rows []string
	for i := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = styleTitle().Render(label)
		} else {
			label = styleMuted().Render(label)
		}
		rows = append(rows, label, f.inputs[i].View(), "")
	}
	if len(f.toggle) > 0 {
		label := f.toggleLabel
		if f.onToggle() {
			label = styleTitle().Render(label)
		} else {
			label = styleMuted().Render(label)
		}
		var opts []string
		for i, opt := range f.toggle {
			if i == f.toggleIdx {
				opts = append(opts, lipgloss.NewStyle().
					Foreground(colorSelectedFg).
					Background(colorSelectedBg).
					Padding(0, 1).
					Render(opt))
			} else {
				opts = append(opts, styleMuted().Render(" "+opt+" "))
			}
		}
		rows = append(rows, label, strings.Join(opts, " "), "")
	}
	if f.errText != "" {
		rows = append(rows, styleError().Render(f.errText), "")
	}
	return strings.Join(rows, "\n")
}

func (m appModel) renderDashboard(width int) string {
	switch m.dashPhase {
	case phaseLoading:
		return m.renderLoading()
	case phaseError:
		return "\n  " + styleError().Render(m.dashErr)
	case phaseIdle:
		return ""
	}

	active := 0
	for _, p := range m.dashProjects {
		if p.Status == model.ProjectStatusActive {
			active++
		}
	}
	done, pending := 0, 0
	for _, t := range m.dashTasks {
		if t.Status == model.TaskStatusDone {
			done++
		} else {
			pending++
		}
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Active projects", active),
		" ",
		statCard("Completed tasks", done),
		" ",
		statCard("Pending tasks", pending),
	)

	var recent []string
	recent = append(recent, styleTitle().Render("Recent projects"))
	if len(m.dashProjects) == 0 {
		recent = append(recent, styleMuted().Render("No projects yet. Press 2, then n to create one."))
	}
	for i, p := range m.dashProjects {
		if i == 3 {
			break
		}
		recent = append(recent, "• "+p.Name+" "+projectStatusBadge(p.Status))
	}

	welcome := "Welcome back, " + m.sess.DisplayName() + "!"
	body := welcome + "\n\n" + cards + "\n\n" + strings.Join(recent, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func statCard(label string, n int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		Render(styleTitle().Render(fmt.Sprintf("%d", n)) + "\n" + styleMuted().Render(label))
}

func (m appModel) renderLoading() string {
	return "\n  " + m.spin.View() + styleMuted().Render(" Loading…")
}

func (m appModel) renderProjects(width int) string {
	switch m.projectsCtl.phase {
	case phaseLoading:
		return m.renderLoading()
	case phaseError:
		return "\n  " + styleError().Render(m.projectsCtl.errText)
	case phaseIdle:
		return ""
	}
	if len(m.projectsCtl.items) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			styleTitle().Render("No projects yet") + "\n" +
				styleMuted().Render("Press n to create your first project."))
	}
	return m.projectsList.View()
}

func (m appModel) renderProjectDetail(width int) string {
	switch m.tasksCtl.phase {
	case phaseLoading:
		return m.renderLoading()
	case phaseError:
		return "\n  " + styleError().Render(m.tasksCtl.errText)
	case phaseIdle:
		return ""
	}

	p := m.project
	var head []string
	head = append(head, styleTitle().Render(p.Name)+" "+projectStatusBadge(p.Status))
	meta := ""
	if p.Creator != nil && strings.TrimSpace(p.Creator.FullName) != "" {
		meta = "by " + p.Creator.FullName
	}
	if !p.CreatedAt.IsZero() {
		if meta != "" {
			meta += " · "
		}
		meta += "created " + p.CreatedAt.Format("2006-01-02")
	}
	if meta != "" {
		head = append(head, styleMuted().Render(meta))
	}
	if desc := renderMarkdown(p.Description, min(width-6, 78)); desc != "" {
		head = append(head, "", desc)
	}

	total := len(m.tasksCtl.items)
	done := 0
	for _, t := range m.tasksCtl.items {
		if t.Status == model.TaskStatusDone {
			done++
		}
	}
	head = append(head, "", styleMuted().Render(fmt.Sprintf("%d / %d tasks completed", done, total)))

	var tasks string
	if total == 0 {
		tasks = styleMuted().Render("No tasks yet. Press n to add one.")
	} else {
		tasks = m.tasksList.View()
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(head, "\n")) + "\n" + tasks
}

func (m appModel) renderTeam(width int) string {
	switch m.membersCtl.phase {
	case phaseLoading:
		return m.renderLoading()
	case phaseError:
		return "\n  " + styleError().Render(m.membersCtl.errText)
	case phaseIdle:
		return ""
	}
	if len(m.membersCtl.items) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(styleMuted().Render("No team members."))
	}
	return m.membersList.View()
}

func (m appModel) renderModal(width int) string {
	switch m.modal {
	case modalNewProject:
		return renderModalBox(width, "New project", m.renderForm(width)+"\n"+formModalHelp())
	case modalNewTask:
		return renderModalBox(width, "New task", m.renderForm(width)+"\n"+formModalHelp())
	case modalAddMember:
		return renderModalBox(width, "Add team member", m.renderForm(width)+"\n"+formModalHelp())
	case modalConfirmDelete:
		return m.renderConfirm(width)
	}
	return ""
}

func formModalHelp() string {
	return styleMuted().Render("enter: next/submit   tab: focus   esc: cancel")
}

func (m appModel) renderConfirm(width int) string {
	t := m.confirmTarget
	var title, body, confirmLabel string
	switch t.kind {
	case confirmDeleteProject:
		title = "Delete project?"
		body = fmt.Sprintf("Delete %q and all of its tasks? This cannot be undone.", t.label)
		confirmLabel = "Delete"
	case confirmDeleteTask:
		title = "Delete task?"
		body = fmt.Sprintf("Delete task %q? This cannot be undone.", t.label)
		confirmLabel = "Delete"
	case confirmRemoveMember:
		title = "Remove member?"
		body = fmt.Sprintf("Remove %s from the team? They will lose access immediately.", t.label)
		confirmLabel = "Remove"
	}
	return renderConfirmModal(width, title, body, confirmLabel, "Cancel", m.confirmFocus)
}

func (m appModel) renderFooter(width int) string {
	var help string
	switch m.view {
	case viewLogin:
		help = "enter: sign in   ctrl+r: register   ctrl+o: new organization   ctrl+c: quit"
	case viewRegister, viewRegisterTenant:
		help = "enter: submit   esc: back to sign in   ctrl+c: quit"
	case viewDashboard:
		help = "2: projects   3: team   r: refresh   o: sign out   q: quit"
	case viewProjects:
		help = "enter: open   n: new   d: delete   r: refresh   /: filter   esc: dashboard"
	case viewProjectDetail:
		help = "s: cycle status   n: new task   d: delete   r: refresh   esc: back"
	case viewTeam:
		if perm.CanManageTeam(m.sess) {
			help = "a: add member   d: remove   r: refresh   esc: dashboard"
		} else {
			help = "r: refresh   esc: dashboard"
		}
	}
	if m.modal == modalConfirmDelete {
		help = "tab: focus   enter: select   y: confirm   esc: cancel"
	} else if m.modal != modalNone {
		help = "enter: next/submit   tab: focus   esc: cancel"
	}

	lines := []string{styleMuted().Render(strings.Repeat("─", max(1, width)))}
	if m.flashText != "" {
		if m.flashIsErr {
			lines = append(lines, styleError().Render(m.flashText))
		} else {
			lines = append(lines, styleOK().Render(m.flashText))
		}
	}
	lines = append(lines, styleMuted().Render(help))
	return strings.Join(lines, "\n")
}
