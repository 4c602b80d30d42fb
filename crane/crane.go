// Package crane simulates a cargo crane rearranging crates between stacks.
package crane

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"advent2022/input"
)

// Stacks maps a stack id to its crates. Index 0 of each slice is the top
// crate.
type Stacks map[int][]byte

// An Instruction moves N crates from stack From to stack To.
type Instruction struct {
	N    int
	From int
	To   int
}

func (in Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", in.N, in.From, in.To)
}

// Mode selects how the crane carries crates.
type Mode int

const (
	// OneAtATime moves crates singly, so a moved group lands reversed.
	OneAtATime Mode = iota
	// Block lifts all the crates of an instruction at once, keeping their
	// order.
	Block
)

func (m Mode) String() string {
	switch m {
	case OneAtATime:
		return "one at a time"
	case Block:
		return "block"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// An UnderflowError reports an instruction that asked for more crates than
// its origin stack held.
type UnderflowError struct {
	Instruction Instruction
	Have        int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%s: stack %d holds only %d crates", e.Instruction, e.Instruction.From, e.Have)
}

// An UnknownStackError reports an instruction naming a stack that is not
// in the diagram. It matches ErrMalformedInstruction.
type UnknownStackError struct {
	Instruction Instruction
	ID          int
}

func (e *UnknownStackError) Error() string {
	return fmt.Sprintf("%s: no stack %d", e.Instruction, e.ID)
}

func (e *UnknownStackError) Unwrap() error { return ErrMalformedInstruction }

var (
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrMalformedDiagram     = errors.New("malformed stack diagram")
)

// Apply carries out a single instruction. If either stack is missing from s
// Apply returns an *UnknownStackError; if the origin stack is too short it
// returns an *UnderflowError. In both cases s is left unchanged.
func (s Stacks) Apply(in Instruction, mode Mode) error {
	for _, id := range []int{in.From, in.To} {
		if _, ok := s[id]; !ok {
			return &UnknownStackError{Instruction: in, ID: id}
		}
	}
	from := s[in.From]
	if in.N > len(from) {
		return &UnderflowError{Instruction: in, Have: len(from)}
	}
	if in.From == in.To {
		return nil
	}
	block := make([]byte, in.N)
	copy(block, from[:in.N])
	if mode == OneAtATime {
		slices.Reverse(block)
	}
	s[in.From] = from[in.N:]
	s[in.To] = append(block, s[in.To]...)
	return nil
}

// Run applies each instruction in order, stopping at the first failure.
// If trace is non-nil it is called after every successful instruction with
// the instruction's index.
func Run(s Stacks, instructions []Instruction, mode Mode, trace func(i int, in Instruction, s Stacks)) error {
	for i, in := range instructions {
		if err := s.Apply(in, mode); err != nil {
			return fmt.Errorf("instruction %d: %w", i+1, err)
		}
		if trace != nil {
			trace(i, in, s)
		}
	}
	return nil
}

// IDs returns the stack ids in ascending order.
func (s Stacks) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns a deep copy of s.
func (s Stacks) Clone() Stacks {
	s1 := make(Stacks, len(s))
	for id, crates := range s {
		s1[id] = slices.Clone(crates)
	}
	return s1
}

// Count returns the total number of crates.
func (s Stacks) Count() int {
	var n int
	for _, crates := range s {
		n += len(crates)
	}
	return n
}

// Tops returns the top crate of each non-empty stack, in id order.
func Tops(s Stacks) string {
	var b strings.Builder
	for _, id := range s.IDs() {
		if crates := s[id]; len(crates) > 0 {
			b.WriteByte(crates[0])
		}
	}
	return b.String()
}

// Render draws s as a grid with a header row of stack ids followed by one
// row per level, top crates first:
//
//	 1   2   3
//	[N] [D] [P]
//	[Z] [C]
//	    [M]
//
// Cells widen to fit ids of more than one digit. Each crate sits under the
// first digit of its stack's id, so ParseDiagram reads the grid back with
// the header row moved last.
func Render(s Stacks) string {
	ids := s.IDs()
	width := 3
	var depth int
	for _, id := range ids {
		width = max(width, len(strconv.Itoa(id))+2)
		depth = max(depth, len(s[id]))
	}
	cells := make([]string, len(ids))
	for i, id := range ids {
		cells[i] = fmt.Sprintf(" %-*d ", width-2, id)
	}
	rows := []string{joinCells(cells)}
	for level := 0; level < depth; level++ {
		for i, id := range ids {
			if crates := s[id]; level < len(crates) {
				cells[i] = fmt.Sprintf("%-*s", width, "["+string(crates[level])+"]")
			} else {
				cells[i] = strings.Repeat(" ", width)
			}
		}
		rows = append(rows, joinCells(cells))
	}
	return strings.Join(rows, "\n")
}

func joinCells(cells []string) string {
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

// Parse reads a stack diagram, a blank line, and a list of instructions.
func Parse(text string) (Stacks, []Instruction, error) {
	chunks := input.Chunks(text)
	if len(chunks) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrMalformedDiagram)
	}
	if len(chunks) > 2 {
		return nil, nil, fmt.Errorf("%w: blank line inside instruction list", ErrMalformedInstruction)
	}
	s, err := ParseDiagram(chunks[0])
	if err != nil {
		return nil, nil, err
	}
	var instructions []Instruction
	if len(chunks) == 2 {
		for _, line := range chunks[1] {
			in, err := ParseInstruction(line)
			if err != nil {
				return nil, nil, err
			}
			instructions = append(instructions, in)
		}
	}
	return s, instructions, nil
}

// ParseDiagram reads a drawing of crate stacks. The last line holds the
// stack ids; a crate belongs to the stack whose id starts in the same
// column.
func ParseDiagram(lines []string) (Stacks, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no id row", ErrMalformedDiagram)
	}
	header := lines[len(lines)-1]
	columns := make(map[int]int) // column -> stack id
	s := make(Stacks)
	for c := 0; c < len(header); {
		if header[c] == ' ' {
			c++
			continue
		}
		end := c
		for end < len(header) && header[end] >= '0' && header[end] <= '9' {
			end++
		}
		if end == c {
			return nil, fmt.Errorf("%w: unexpected %q in id row", ErrMalformedDiagram, header[c])
		}
		id, err := strconv.Atoi(header[c:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedDiagram, err)
		}
		if _, ok := s[id]; ok {
			return nil, fmt.Errorf("%w: duplicate stack id %d", ErrMalformedDiagram, id)
		}
		columns[c] = id
		s[id] = nil
		c = end
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: no stack ids", ErrMalformedDiagram)
	}

	for _, line := range lines[:len(lines)-1] {
		for c := 0; c < len(line); c++ {
			switch ch := line[c]; ch {
			case '[', ']', ' ':
			default:
				id, ok := columns[c]
				if !ok {
					return nil, fmt.Errorf("%w: crate %q in column %d has no stack", ErrMalformedDiagram, ch, c+1)
				}
				s[id] = append(s[id], ch)
			}
		}
	}
	return s, nil
}

var instructionRx = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// ParseInstruction parses a line of the form "move N from A to B".
func ParseInstruction(line string) (Instruction, error) {
	m := instructionRx.FindStringSubmatch(line)
	if m == nil {
		return Instruction{}, fmt.Errorf("%w: %q", ErrMalformedInstruction, line)
	}
	var nums [3]int
	for i, s := range m[1:] {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Instruction{}, fmt.Errorf("%w: %q", ErrMalformedInstruction, line)
		}
		nums[i] = n
	}
	return Instruction{N: nums[0], From: nums[1], To: nums[2]}, nil
}
