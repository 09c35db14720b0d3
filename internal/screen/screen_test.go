package screen

import "testing"

func TestNew(t *testing.T) {
	s := New()
	if s.Current != MainMenu {
		t.Errorf("Current = %q, want %q", s.Current, MainMenu)
	}
	if s.Previous != "" {
		t.Errorf("Previous = %q, want empty", s.Previous)
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to Name
	}{
		{"main to create", MainMenu, CreateExtension},
		{"create back to main", CreateExtension, MainMenu},
		{"from does not match current", "settings", "help"},
		{"self transition", MainMenu, MainMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Transition(tt.from, tt.to)
			if s.Previous != tt.from {
				t.Errorf("Previous = %q, want %q", s.Previous, tt.from)
			}
			if s.Current != tt.to {
				t.Errorf("Current = %q, want %q", s.Current, tt.to)
			}
		})
	}
}

func TestTransition_LastWriteWins(t *testing.T) {
	s := New()
	s.Transition(MainMenu, CreateExtension)
	s.Transition(CreateExtension, MainMenu)
	s.Transition("a", "b")

	if s.Previous != "a" || s.Current != "b" {
		t.Errorf("state = %+v, want {Previous:a Current:b}", *s)
	}
}
