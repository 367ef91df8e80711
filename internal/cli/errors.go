package cli

import "errors"

// errSelfRemoval mirrors the UI rule: you cannot remove yourself from the
// team, regardless of role.
var errSelfRemoval = errors.New("cannot remove your own account from the team")
