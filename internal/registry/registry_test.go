package registry

import (
	"testing"

	"github.com/arcadeworks/tui-planes/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string                   { return s.id }
func (s *stubGame) Title() string                { return s.title }
func (s *stubGame) Reset(cfg core.RuntimeConfig) {}
func (s *stubGame) Render(dst *core.Screen)      {}
func (s *stubGame) State() core.GameState        { return core.GameState{} }

func (s *stubGame) Advance(cmd core.Command, now float64) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", func() Game {
		return &stubGame{id: "stub-create", title: "Stub"}
	})

	if !Exists("stub-create") {
		t.Error("Registered game should exist")
	}

	g, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-create" || g.Title() != "Stub" {
		t.Errorf("Created game = (%s, %s), expected (stub-create, Stub)", g.ID(), g.Title())
	}

	// Each Create returns a fresh instance
	g2, _ := Create("stub-create")
	if g == g2 {
		t.Error("Create should return distinct instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create with an unknown ID should fail")
	}
	if Exists("no-such-game") {
		t.Error("Unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game {
		return &stubGame{id: "stub-dup", title: "Dup"}
	})

	defer func() {
		if recover() == nil {
			t.Error("Duplicate registration should panic")
		}
	}()
	Register("stub-dup", func() Game {
		return &stubGame{id: "stub-dup", title: "Dup"}
	})
}

func TestListSorted(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "B"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "A"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List not sorted: %s before %s", games[i-1].ID, games[i].ID)
		}
	}

	found := map[string]bool{}
	for _, info := range games {
		found[info.ID] = true
	}
	if !found["stub-a"] || !found["stub-b"] {
		t.Error("List should include registered games")
	}
}
