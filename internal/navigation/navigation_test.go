package navigation

import (
	"testing"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

var goal = isogrid.Cell{Col: 10, Row: 10}

func newOccupancy(t *testing.T) *grid.Occupancy {
	t.Helper()
	occ := grid.NewOccupancy(20)
	if err := occ.Place(goal, 1); err != nil {
		t.Fatal(err)
	}
	return occ
}

// walk drives a policy until arrival or siege, marking every visited cell.
func walk(t *testing.T, p Policy, occ *grid.Occupancy, start isogrid.Cell) (Step, int) {
	t.Helper()
	u := &component.Unit{Cell: start}
	for steps := 0; steps < 200; steps++ {
		s := p.NextStep(u)
		switch s.Kind {
		case StepArrived, StepSiege:
			return s, steps
		case StepMove:
			if s.Cell.Manhattan(u.Cell) != 1 {
				t.Fatalf("non-adjacent move %v -> %v", u.Cell, s.Cell)
			}
			if s.Cell != goal && occ.IsOccupied(s.Cell) {
				t.Fatalf("moved into occupied cell %v", s.Cell)
			}
			u.Cell = s.Cell
		}
	}
	t.Fatal("unit never arrived")
	return Step{}, 0
}

func TestAStarPolicyReachesGoalOnEmptyMap(t *testing.T) {
	occ := newOccupancy(t)
	s, steps := walk(t, New(config.NavigationAStar, occ, goal), occ, isogrid.Cell{})
	if s.Kind != StepArrived {
		t.Fatalf("Expected arrival, got %v", s.Kind)
	}
	if steps != 20 {
		t.Errorf("Expected 20 steps from (0,0), got %d", steps)
	}
}

func TestAStarPolicyRoutesAroundWall(t *testing.T) {
	occ := newOccupancy(t)
	for row := 0; row < 15; row++ {
		occ.Place(isogrid.Cell{Col: 5, Row: row}, types.EntityID(100+row))
	}
	s, _ := walk(t, New(config.NavigationAStar, occ, goal), occ, isogrid.Cell{})
	if s.Kind != StepArrived {
		t.Errorf("Expected the unit to walk around the wall, got %v", s.Kind)
	}
}

func TestAStarPolicySiegesWhenGoalIsWalledOff(t *testing.T) {
	occ := newOccupancy(t)
	ring := map[types.EntityID]bool{}
	id := types.EntityID(50)
	for _, n := range goal.Neighbors4() {
		occ.Place(n, id)
		ring[id] = true
		id++
	}
	s, _ := walk(t, New(config.NavigationAStar, occ, goal), occ, isogrid.Cell{})
	if s.Kind != StepSiege {
		t.Fatalf("Expected siege, got %v", s.Kind)
	}
	if !ring[s.Blocker] {
		t.Errorf("Expected to siege a ring wall, got %d", s.Blocker)
	}
}

func TestAStarPolicyReplansOnStaleStep(t *testing.T) {
	occ := newOccupancy(t)
	p := New(config.NavigationAStar, occ, goal)
	u := &component.Unit{Cell: isogrid.Cell{Col: 0, Row: 10}}

	first := p.NextStep(u)
	u.Cell = first.Cell
	// Блокируем следующий шаг сохранённого пути
	blocked := u.Path[u.PathIndex+1]
	occ.Place(blocked, 99)

	s := p.NextStep(u)
	if s.Kind != StepMove || s.Cell == blocked {
		t.Errorf("Expected a detour move, got %+v", s)
	}
}

func TestGreedyPolicySiegesFirstObstacle(t *testing.T) {
	occ := newOccupancy(t)
	wall := isogrid.Cell{Col: 2, Row: 1}
	occ.Place(wall, 77)

	s, steps := walk(t, New(config.NavigationGreedy, occ, goal), occ, isogrid.Cell{})
	if s.Kind != StepSiege || s.Blocker != 77 || s.Cell != wall {
		t.Errorf("Expected siege of wall 77 at %v, got %+v", wall, s)
	}
	if steps != 2 {
		t.Errorf("Expected 2 moves before the wall, got %d", steps)
	}
}
