package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"taskdeck-cli/internal/model"
)

type formKind int

const (
	formNone formKind = iota
	formLogin
	formRegister
	formRegisterTenant
	formNewProject
	formNewTask
	formAddMember
)

// form is a vertical stack of text inputs, optionally followed by a single
// choice field (role or task status) cycled with left/right.
type form struct {
	kind   formKind
	labels []string
	inputs []textinput.Model

	toggleLabel string
	toggle      []string
	toggleIdx   int

	focus   int
	errText string
}

func newField(placeholder string, password bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func newForm(kind formKind, fields []struct {
	label, placeholder string
	password           bool
}) *form {
	f := &form{kind: kind}
	for _, fd := range fields {
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, newField(fd.placeholder, fd.password))
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

type fieldDef = struct {
	label, placeholder string
	password           bool
}

func newLoginForm() *form {
	return newForm(formLogin, []fieldDef{
		{label: "Workspace (subdomain)", placeholder: "e.g. demo (leave empty for super admin)"},
		{label: "Email", placeholder: "you@company.com"},
		{label: "Password", password: true},
	})
}

func newRegisterForm() *form {
	f := newForm(formRegister, []fieldDef{
		{label: "Workspace (subdomain)", placeholder: "e.g. demo"},
		{label: "Full name", placeholder: "John Doe"},
		{label: "Email", placeholder: "john@company.com"},
		{label: "Password", password: true},
	})
	f.toggleLabel = "Role"
	f.toggle = []string{string(model.RoleUser), string(model.RoleTenantAdmin)}
	return f
}

func newRegisterTenantForm() *form {
	return newForm(formRegisterTenant, []fieldDef{
		{label: "Organization name", placeholder: "e.g. Acme Inc"},
		{label: "Subdomain", placeholder: "e.g. acme"},
		{label: "Admin full name", placeholder: "Jane Doe"},
		{label: "Admin email", placeholder: "jane@acme.com"},
		{label: "Admin password", password: true},
	})
}

func newProjectForm() *form {
	return newForm(formNewProject, []fieldDef{
		{label: "Project name", placeholder: "e.g. Website Redesign"},
		{label: "Description", placeholder: "Briefly describe the project goals…"},
	})
}

func newTaskForm() *form {
	f := newForm(formNewTask, []fieldDef{
		{label: "Title", placeholder: "What needs to be done?"},
	})
	f.toggleLabel = "Status"
	f.toggle = []string{
		string(model.TaskStatusTodo),
		string(model.TaskStatusInProgress),
		string(model.TaskStatusDone),
	}
	return f
}

func newMemberForm() *form {
	f := newForm(formAddMember, []fieldDef{
		{label: "Full name", placeholder: "John Doe"},
		{label: "Email", placeholder: "john@company.com"},
		{label: "Password", password: true},
	})
	f.toggleLabel = "Role"
	f.toggle = []string{string(model.RoleUser), string(model.RoleTenantAdmin)}
	return f
}

func (f *form) fieldCount() int {
	n := len(f.inputs)
	if len(f.toggle) > 0 {
		n++
	}
	return n
}

func (f *form) onToggle() bool {
	return len(f.toggle) > 0 && f.focus == len(f.inputs)
}

func (f *form) onLastField() bool {
	return f.focus == f.fieldCount()-1
}

func (f *form) setFocus(i int) {
	n := f.fieldCount()
	if n == 0 {
		return
	}
	f.focus = ((i % n) + n) % n
	for idx := range f.inputs {
		if idx == f.focus {
			f.inputs[idx].Focus()
		} else {
			f.inputs[idx].Blur()
		}
	}
}

func (f *form) next() { f.setFocus(f.focus + 1) }
func (f *form) prev() { f.setFocus(f.focus - 1) }

func (f *form) cycleToggle(delta int) {
	if len(f.toggle) == 0 {
		return
	}
	n := len(f.toggle)
	f.toggleIdx = ((f.toggleIdx+delta)%n + n) % n
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) toggleValue() string {
	if len(f.toggle) == 0 {
		return ""
	}
	return f.toggle[f.toggleIdx]
}

// validate enforces the same "required" rules the corresponding web forms
// had; the workspace field on login is the one optional field.
func (f *form) validate() string {
	for i := range f.inputs {
		if f.kind == formLogin && i == 0 {
			continue
		}
		if f.value(i) == "" {
			return f.labels[i] + " is required"
		}
	}
	return ""
}
