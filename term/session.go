package term

import (
	"io"

	"github.com/muesli/termenv"
)

// Session tracks terminal state changed for a full-screen run so it can be
// put back on exit.
type Session struct {
	out       *termenv.Output
	altScreen bool
	active    bool
}

func NewSession(w io.Writer) *Session {
	return &Session{out: termenv.NewOutput(w)}
}

// Profile is the colour profile detected from the environment.
func (s *Session) Profile() termenv.Profile {
	return s.out.EnvColorProfile()
}

// Enter hides the cursor and, when altScreen is set, switches to the
// alternate screen.
func (s *Session) Enter(altScreen bool) {
	if s.active {
		return
	}
	s.active = true
	s.altScreen = altScreen
	if altScreen {
		s.out.AltScreen()
	}
	s.out.HideCursor()
}

func (s *Session) Exit() {
	if !s.active {
		return
	}
	s.active = false
	s.out.ShowCursor()
	if s.altScreen {
		s.out.ExitAltScreen()
	}
}
