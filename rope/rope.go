// Package rope simulates a rope of knots dragged around an integer grid by
// its head.
package rope

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent2022/input"
	"golang.org/x/exp/constraints"
)

// Pos is a point on the grid.
type Pos struct {
	X, Y int
}

func (p Pos) add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y}
}

// Touching reports whether p and q are the same point or neighbors,
// including diagonally.
func (p Pos) Touching(q Pos) bool {
	return absDiff(p.X, q.X) <= 1 && absDiff(p.Y, q.Y) <= 1
}

// Toward returns the point one step from p in the direction of q: each
// coordinate that differs from q's moves by one toward it.
func (p Pos) Toward(q Pos) Pos {
	return Pos{p.X + sign(q.X-p.X), p.Y + sign(q.Y-p.Y)}
}

func absDiff[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Dir is a direction in which the head can be moved.
type Dir byte

const (
	Right Dir = 'R'
	Left  Dir = 'L'
	Up    Dir = 'U'
	Down  Dir = 'D'
)

func (d Dir) delta() (Pos, bool) {
	switch d {
	case Right:
		return Pos{1, 0}, true
	case Left:
		return Pos{-1, 0}, true
	case Up:
		return Pos{0, 1}, true
	case Down:
		return Pos{0, -1}, true
	}
	return Pos{}, false
}

func (d Dir) String() string { return string(d) }

// A Move drags the head N steps in direction Dir.
type Move struct {
	Dir Dir
	N   int
}

var ErrMalformedMove = errors.New("malformed move")

// ParseMoves parses one move per line, each a direction letter (R, L, U,
// or D) and a positive step count separated by a space.
func ParseMoves(text string) ([]Move, error) {
	var moves []Move
	for _, line := range input.Lines(text) {
		fields := strings.Split(line, " ")
		if len(fields) != 2 || len(fields[0]) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedMove, line)
		}
		d := Dir(fields[0][0])
		if _, ok := d.delta(); !ok {
			return nil, fmt.Errorf("%w: bad direction in %q", ErrMalformedMove, line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: bad step count in %q", ErrMalformedMove, line)
		}
		moves = append(moves, Move{Dir: d, N: n})
	}
	return moves, nil
}

// A Rope is a chain of knots, head first, and the set of positions its
// tail has occupied.
type Rope struct {
	knots   []Pos
	visited map[Pos]struct{}
}

// New returns a rope of n knots, counting the head and the tail, all at
// the origin. It panics if n < 2.
func New(n int) *Rope {
	if n < 2 {
		panic(fmt.Sprintf("rope: need at least 2 knots, got %d", n))
	}
	return &Rope{
		knots:   make([]Pos, n),
		visited: map[Pos]struct{}{{}: {}},
	}
}

// Step moves the head one unit in direction d and lets every following
// knot catch up with the knot ahead of it.
func (r *Rope) Step(d Dir) {
	delta, ok := d.delta()
	if !ok {
		panic(fmt.Sprintf("rope: bad direction %q", byte(d)))
	}
	r.knots[0] = r.knots[0].add(delta)
	for i := 1; i < len(r.knots); i++ {
		if r.knots[i].Touching(r.knots[i-1]) {
			// Nothing behind this knot moves either.
			break
		}
		r.knots[i] = r.knots[i].Toward(r.knots[i-1])
	}
	r.visited[r.Tail()] = struct{}{}
}

// Apply makes m.N steps in m.Dir.
func (r *Rope) Apply(m Move) {
	for i := 0; i < m.N; i++ {
		r.Step(m.Dir)
	}
}

func (r *Rope) Head() Pos { return r.knots[0] }
func (r *Rope) Tail() Pos { return r.knots[len(r.knots)-1] }

// Knots returns a copy of the knot positions, head first.
func (r *Rope) Knots() []Pos {
	return append([]Pos(nil), r.knots...)
}

// Visited returns the number of distinct positions the tail has
// occupied, including the origin.
func (r *Rope) Visited() int { return len(r.visited) }

// Simulate drags a fresh rope of n knots through moves and returns the
// number of positions its tail visited.
func Simulate(moves []Move, n int) int {
	r := New(n)
	for _, m := range moves {
		r.Apply(m)
	}
	return r.Visited()
}
