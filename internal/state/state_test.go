package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Enter()                   { *s.log = append(*s.log, s.name+".enter") }
func (s *traceState) Update(deltaTime float64) { *s.log = append(*s.log, s.name+".update") }
func (s *traceState) Draw(screen *ebiten.Image) {}
func (s *traceState) Exit()                    { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // без состояния ничего не происходит

	a := &traceState{name: "a", log: &log}
	b := &traceState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.SetState(nil)

	want := []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if sm.Current() != nil {
		t.Error("expected no current state")
	}
}

func TestBindingsCoverActions(t *testing.T) {
	seen := map[ebiten.Key]bool{}
	for _, b := range bindings {
		if seen[b.key] {
			t.Errorf("key %v bound twice", b.key)
		}
		seen[b.key] = true
	}
	for _, k := range []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeySpace, ebiten.KeyQ, ebiten.KeyEnter} {
		if !seen[k] {
			t.Errorf("key %v is not bound", k)
		}
	}
}
