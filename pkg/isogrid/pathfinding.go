// pkg/isogrid/pathfinding.go
package isogrid

import (
	"container/heap"

	"go-siege-defense/pkg/utils"
)

// Walkable reports whether a unit may stand on the cell. Implementations must
// answer false for cells outside the map.
type Walkable func(c Cell) bool

// AStar находит кратчайший путь от start до goal (4 направления, вес 1).
// The result runs from start to goal inclusive; nil means the goal is
// unreachable. Nodes with equal f are expanded in insertion order.
func AStar(start, goal Cell, walkable Walkable) []Cell {
	if start == goal {
		return []Cell{start}
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Cell: start, G: 0, F: start.Manhattan(goal), Seq: seq})
	costSoFar := map[Cell]int{start: 0}
	closed := make(map[Cell]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Cell] {
			continue // устаревшая запись
		}
		closed[current.Cell] = true

		if current.Cell == goal {
			return reconstructPath(current)
		}

		for _, neighbor := range current.Cell.Neighbors4() {
			if closed[neighbor] || !walkable(neighbor) {
				continue
			}
			newCost := current.G + 1
			if old, seen := costSoFar[neighbor]; seen && newCost >= old {
				continue
			}
			costSoFar[neighbor] = newCost
			seq++
			heap.Push(pq, &Node{
				Cell:   neighbor,
				G:      newCost,
				F:      newCost + neighbor.Manhattan(goal),
				Seq:    seq,
				Parent: current,
			})
		}
	}
	return nil // Нет пути
}

// GreedyStep returns the next cell on the axis with the larger remaining
// distance to goal. Ties go to the column axis. A unit already on goal gets
// goal back.
func GreedyStep(from, goal Cell) Cell {
	dx := goal.Col - from.Col
	dy := goal.Row - from.Row
	if dx == 0 && dy == 0 {
		return from
	}
	if utils.Abs(dx) >= utils.Abs(dy) {
		return Cell{Col: from.Col + utils.Sign(dx), Row: from.Row}
	}
	return Cell{Col: from.Col, Row: from.Row + utils.Sign(dy)}
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Cell   Cell
	G      int
	F      int
	Seq    int
	Parent *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Cell {
	path := []Cell{}
	for node != nil {
		path = append(path, node.Cell)
		node = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
