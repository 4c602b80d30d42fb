package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("10", day10)
}

const (
	screenWidth  = 40
	screenHeight = 6
)

func day10(text string, _ ini.Section) (interface{}, interface{}, error) {
	prog, err := parseProgram(text)
	if err != nil {
		return nil, nil, err
	}
	xs := registerX(prog, screenWidth*screenHeight)
	debugf("%d instructions, X=%d during cycle %d", len(prog), xs[len(xs)-1], len(xs))

	var strength int
	for cycle := 20; cycle <= 220; cycle += 40 {
		strength += cycle * xs[cycle-1]
	}

	var scr screen
	for i, x := range xs {
		col := i % screenWidth
		scr[i/screenWidth][col] = col >= x-1 && col <= x+1
	}
	return strength, scr, nil
}

// An op is one CPU instruction: it takes cycles to run and then adds dx to
// the X register.
type op struct {
	cycles int
	dx     int
}

func parseProgram(text string) ([]op, error) {
	var prog []op
	for _, line := range input.Lines(text) {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && fields[0] == "noop":
			prog = append(prog, op{cycles: 1})
		case len(fields) == 2 && fields[0] == "addx":
			dx, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("bad addx operand in %q", line)
			}
			prog = append(prog, op{cycles: 2, dx: dx})
		default:
			return nil, fmt.Errorf("unknown instruction %q", line)
		}
	}
	if len(prog) == 0 {
		return nil, errors.New("empty program")
	}
	return prog, nil
}

// registerX returns the value of X during each of the first n cycles.
// X starts at 1 and keeps its final value once the program ends.
func registerX(prog []op, n int) []int {
	xs := make([]int, 0, n)
	x := 1
	for _, o := range prog {
		for i := 0; i < o.cycles; i++ {
			xs = append(xs, x)
		}
		x += o.dx
	}
	for len(xs) < n {
		xs = append(xs, x)
	}
	return xs[:n]
}

// A screen holds the lit pixels of the CRT, indexed [row][column].
type screen [screenHeight][screenWidth]bool

// String draws the screen with '#' for lit pixels, starting each row on
// a new line.
func (s screen) String() string {
	var b strings.Builder
	for _, row := range s {
		b.WriteByte('\n')
		for _, lit := range row {
			if lit {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
