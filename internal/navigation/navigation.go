// internal/navigation/navigation.go
package navigation

import (
	"log"

	"go-siege-defense/internal/component"
	"go-siege-defense/internal/config"
	"go-siege-defense/internal/grid"
	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

// StepKind - решение навигации для юнита, стоящего в клетке.
type StepKind int

const (
	StepMove    StepKind = iota // идти в Step.Cell
	StepSiege                   // атаковать Step.Blocker
	StepArrived                 // юнит уже в целевой клетке
)

// Step is the outcome of one navigation decision.
type Step struct {
	Kind    StepKind
	Cell    isogrid.Cell
	Blocker types.EntityID
}

// Policy decides the next cell for a unit that is not mid-step.
// A Move step never targets an occupied cell other than the goal.
type Policy interface {
	NextStep(u *component.Unit) Step
}

// New returns the policy configured for this build.
func New(kind config.NavigationPolicy, occ *grid.Occupancy, goal isogrid.Cell) Policy {
	switch kind {
	case config.NavigationGreedy:
		return &GreedyPolicy{occ: occ, goal: goal}
	case config.NavigationAStar:
		return &AStarPolicy{occ: occ, goal: goal}
	default:
		log.Printf("navigation: unknown policy %q, using %s", kind, config.NavigationAStar)
		return &AStarPolicy{occ: occ, goal: goal}
	}
}

// AStarPolicy follows a shortest path and replans only when the stored
// next step has become occupied.
type AStarPolicy struct {
	occ  *grid.Occupancy
	goal isogrid.Cell
}

func (p *AStarPolicy) walkable(c isogrid.Cell) bool {
	return c == p.goal || p.occ.IsWalkable(c)
}

func (p *AStarPolicy) NextStep(u *component.Unit) Step {
	if u.Cell == p.goal {
		return Step{Kind: StepArrived, Cell: u.Cell}
	}

	stale := isogrid.Cell{Col: -1, Row: -1}
	hasStale := false
	if p.onPath(u) {
		next := u.Path[u.PathIndex+1]
		if p.walkable(next) {
			u.PathIndex++
			return Step{Kind: StepMove, Cell: next}
		}
		stale, hasStale = next, true
	}

	u.Path = isogrid.AStar(u.Cell, p.goal, p.walkable)
	u.PathIndex = 0
	if len(u.Path) > 1 {
		u.PathIndex = 1
		return Step{Kind: StepMove, Cell: u.Path[1]}
	}
	u.Path = nil

	// Пути нет: осаждаем то, что стоит на устаревшем шаге, иначе - на жадном.
	if hasStale {
		if id, ok := p.occ.At(stale); ok {
			return Step{Kind: StepSiege, Cell: stale, Blocker: id}
		}
	}
	return greedyDecision(p.occ, p.goal, u.Cell)
}

func (p *AStarPolicy) onPath(u *component.Unit) bool {
	return u.PathIndex+1 < len(u.Path) && u.Path[u.PathIndex] == u.Cell
}

// GreedyPolicy steps along the axis with the larger remaining distance and
// treats any occupant of that cell as a siege target.
type GreedyPolicy struct {
	occ  *grid.Occupancy
	goal isogrid.Cell
}

func (p *GreedyPolicy) NextStep(u *component.Unit) Step {
	if u.Cell == p.goal {
		return Step{Kind: StepArrived, Cell: u.Cell}
	}
	return greedyDecision(p.occ, p.goal, u.Cell)
}

func greedyDecision(occ *grid.Occupancy, goal, from isogrid.Cell) Step {
	next := isogrid.GreedyStep(from, goal)
	if next == goal {
		return Step{Kind: StepMove, Cell: next}
	}
	if id, ok := occ.At(next); ok {
		return Step{Kind: StepSiege, Cell: next, Blocker: id}
	}
	return Step{Kind: StepMove, Cell: next}
}
