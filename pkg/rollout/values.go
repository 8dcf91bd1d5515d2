package rollout

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
)

// Per-cell accumulated values, [row][column], cells never proposed stay 0
type ValueGrid [3][3]float64

// Accumulated reward of every attributed move, remembers the order in which
// the moves were first seen, which decides ties in Best
type ValueMap struct {
	keys   []ttt.Move
	values map[ttt.Move]int
	visits map[ttt.Move]int
}

func NewValueMap() *ValueMap {
	return &ValueMap{
		keys:   make([]ttt.Move, 0, 9),
		values: make(map[ttt.Move]int, 9),
		visits: make(map[ttt.Move]int, 9),
	}
}

// Credit the reward of one rollout to its attributed move
func (vm *ValueMap) Add(move ttt.Move, reward int) {
	if _, ok := vm.visits[move]; !ok {
		vm.keys = append(vm.keys, move)
	}
	vm.values[move] += reward
	vm.visits[move]++
}

// Sum the other map into this one, moves unseen so far are appended
// in the other map's order
func (vm *ValueMap) Merge(other *ValueMap) {
	if other == nil {
		return
	}
	for _, move := range other.keys {
		if _, ok := vm.visits[move]; !ok {
			vm.keys = append(vm.keys, move)
		}
		vm.values[move] += other.values[move]
		vm.visits[move] += other.visits[move]
	}
}

// Move with the largest accumulated value, ties go to the first inserted move.
// Returns false if the map is empty
func (vm *ValueMap) Best() (ttt.Move, bool) {
	if len(vm.keys) == 0 {
		return ttt.Move{}, false
	}

	best := vm.keys[0]
	bestValue := vm.values[best]
	for _, move := range vm.keys[1:] {
		if v := vm.values[move]; v > bestValue {
			best = move
			bestValue = v
		}
	}
	return best, true
}

// Moves in insertion order
func (vm *ValueMap) Keys() []ttt.Move {
	keys := make([]ttt.Move, len(vm.keys))
	copy(keys, vm.keys)
	return keys
}

func (vm *ValueMap) Value(move ttt.Move) int {
	return vm.values[move]
}

// Number of rollouts attributed to the move
func (vm *ValueMap) Visits(move ttt.Move) int {
	return vm.visits[move]
}

func (vm *ValueMap) Len() int {
	return len(vm.keys)
}

// Sum of all visits, equal to the number of rollouts
func (vm *ValueMap) TotalVisits() int {
	total := 0
	for _, v := range vm.visits {
		total += v
	}
	return total
}

func (vm *ValueMap) Grid() ValueGrid {
	grid := ValueGrid{}
	for _, move := range vm.keys {
		grid[move.Row][move.Col] = float64(vm.values[move])
	}
	return grid
}

func (vm *ValueMap) String() string {
	parts := make([]string, len(vm.keys))
	for i, move := range vm.keys {
		parts[i] = fmt.Sprintf("%v=%d/%d", move, vm.values[move], vm.visits[move])
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Largest absolute value in the grid, 0 for an empty one
func (g ValueGrid) MaxAbs() float64 {
	m := 0.0
	for _, row := range g {
		for _, v := range row {
			m = max(m, v, -v)
		}
	}
	return m
}
