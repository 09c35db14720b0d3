// Package screen records where the user is in the interactive menu flow.
package screen

// Name identifies a screen of the interactive flow.
type Name string

// Known screens.
const (
	MainMenu        Name = "main_menu"
	CreateExtension Name = "create_extension"
)

// State is the previous/current screen pair. It is a record of the last
// transition, not a guard: Transition accepts any pair of names.
type State struct {
	Previous Name
	Current  Name
}

// New returns the state the program starts in.
func New() *State {
	return &State{Current: MainMenu}
}

// Transition records a move from one screen to another. Both fields are
// overwritten even when from differs from the current screen.
func (s *State) Transition(from, to Name) {
	s.Previous = from
	s.Current = to
}
