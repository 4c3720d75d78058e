package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/agent8/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string { return g.id }
func (g fakeGame) Title() string { return strings.ToUpper(g.id) }
func (g fakeGame) Reset(core.RuntimeConfig) {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(core.Canvas) {}
func (g fakeGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Game { return fakeGame{id: "zz-test"} })
	Register("aa-test", func() Game { return fakeGame{id: "aa-test"} })

	if !Exists("zz-test") || Exists("nope") {
		t.Error("Exists() disagrees with Register()")
	}

	g, err := Create("aa-test")
	if err != nil || g.ID() != "aa-test" {
		t.Fatalf("Create() = %v, %v", g, err)
	}
	if _, err := Create("nope"); err == nil {
		t.Error("unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasSuffix(info.ID, "-test") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "aa-test=AA-TEST,zz-test=ZZ-TEST" {
		t.Errorf("List() = %s", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return fakeGame{id: "dup-test"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Game { return fakeGame{id: "dup-test"} })
}
