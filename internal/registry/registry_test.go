package registry

import (
	"testing"

	"github.com/vovakirdan/oh-coconuts/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub-a")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() with unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}
