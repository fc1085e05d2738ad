package registry

import (
	"testing"

	"github.com/vovakirdan/paperplane/internal/core"
)

type stubGame struct{ id string }

type modedStub struct{ stubGame }

func (g *modedStub) Mode() string { return "follow" }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	// List is sorted by ID and carries titles
	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" && info.Title != "Stub zz_stub_a" {
			t.Errorf("unexpected title %q", info.Title)
		}
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("no_such_game") {
		t.Fatal("unexpected game")
	}
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}

func TestLookupReportsMode(t *testing.T) {
	Register("zz_stub_moded", func() Game { return &modedStub{stubGame{id: "zz_stub_moded"}} })

	info, ok := Lookup("zz_stub_moded")
	if !ok {
		t.Fatal("Lookup() should find the registered game")
	}
	if info.Mode != "follow" {
		t.Errorf("Mode = %q, expected %q", info.Mode, "follow")
	}

	info, ok = Lookup("zz_stub_a")
	if ok && info.Mode != "" {
		t.Errorf("game without Moder should have no mode, got %q", info.Mode)
	}
}
