package tui

import "taskdeck-cli/internal/api"

type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseReady
	phaseError
)

// controller is the per-list state machine shared by every resource view:
// Idle -> Loading -> {Ready, Error}. It exists once so Projects, Tasks and
// Team don't each re-derive the same transitions.
//
// A 401 never reaches Error: the list quietly returns to Idle and the caller
// routes to the login screen. "You're not allowed" must not look like "the
// feature broke".
type controller[T any] struct {
	phase   phase
	items   []T
	errText string
}

func (c *controller[T]) startLoad() {
	c.phase = phaseLoading
	c.errText = ""
}

// apply ingests a fetch result, replacing the view state wholesale (never
// merged or patched). It reports whether the caller must re-authenticate.
func (c *controller[T]) apply(items []T, err error) (unauthorized bool) {
	if err != nil {
		if api.IsUnauthorized(err) {
			c.phase = phaseIdle
			return true
		}
		c.phase = phaseError
		c.errText = err.Error()
		return false
	}
	c.phase = phaseReady
	c.items = items
	c.errText = ""
	return false
}
