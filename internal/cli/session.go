// Package cli implements the interactive command loop of the scheduler.
package cli

import "vaxsched/internal/model"

// Session is the single active login of the process. The zero value means
// nobody is logged in. It is an explicit value on the App, never a global.
type Session struct {
	Role     model.Role
	Username string
}

// Active reports whether a principal is logged in.
func (s Session) Active() bool { return s.Role != "" }

// Is reports whether the session holds the given role.
func (s Session) Is(role model.Role) bool { return s.Role == role }
