package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"

	"taskdeck-cli/internal/model"
)

type projectItem struct {
	project model.Project
}

func (i projectItem) FilterValue() string { return i.project.Name }
func (i projectItem) Title() string {
	t := i.project.Name
	if b := projectStatusBadge(i.project.Status); b != "" {
		t += " " + b
	}
	return t
}
func (i projectItem) Description() string {
	desc := strings.TrimSpace(i.project.Description)
	if desc == "" {
		desc = "(no description)"
	}
	// Keep card rows to one line; descriptions can be arbitrarily long.
	desc = strings.SplitN(desc, "\n", 2)[0]
	if xansi.StringWidth(desc) > 60 {
		desc = xansi.Cut(desc, 0, 57) + "…"
	}
	by := ""
	if i.project.Creator != nil && strings.TrimSpace(i.project.Creator.FullName) != "" {
		by = " · " + i.project.Creator.FullName
	}
	return desc + by
}

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string {
	if i.task.Status == model.TaskStatusDone {
		return styleMuted().Strikethrough(true).Render(i.task.Title)
	}
	return i.task.Title
}
func (i taskItem) Description() string { return taskStatusLabel(i.task.Status) }

type memberItem struct {
	member model.TeamMember
	self   bool
}

func (i memberItem) FilterValue() string { return i.member.FullName + " " + i.member.Email }
func (i memberItem) Title() string {
	t := i.member.FullName
	if i.self {
		t += " " + styleMuted().Render("(you)")
	}
	return t
}
func (i memberItem) Description() string {
	joined := ""
	if !i.member.CreatedAt.IsZero() {
		joined = "  ·  joined " + i.member.CreatedAt.Format("2006-01-02")
	}
	return i.member.Email + "  ·  " + roleBadge(i.member.Role) + joined
}

func newList(title, help string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func projectListItems(projects []model.Project) []list.Item {
	out := make([]list.Item, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectItem{project: p})
	}
	return out
}

func taskListItems(tasks []model.Task) []list.Item {
	out := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskItem{task: t})
	}
	return out
}

func memberListItems(members []model.TeamMember, self model.ID) []list.Item {
	out := make([]list.Item, 0, len(members))
	for _, mm := range members {
		out = append(out, memberItem{member: mm, self: self != "" && mm.ID == self})
	}
	return out
}
