package main

import (
	"fmt"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("2", day2)
}

// Shapes and outcomes are numbered 0-2: rock, paper, scissors and lose,
// draw, win. Each shape beats the one before it, mod 3.

func day2(text string, _ ini.Section) (interface{}, interface{}, error) {
	var score1, score2 int
	for _, line := range input.Lines(text) {
		if len(line) != 3 || line[1] != ' ' ||
			line[0] < 'A' || line[0] > 'C' ||
			line[2] < 'X' || line[2] > 'Z' {
			return nil, nil, fmt.Errorf("bad strategy line %q", line)
		}
		opp := int(line[0] - 'A')
		col := int(line[2] - 'X')

		// Part 1: the second column is our shape.
		score1 += roundScore(col, outcome(opp, col))

		// Part 2: the second column is the outcome we want.
		score2 += roundScore((opp+col+2)%3, col)
	}
	return score1, score2, nil
}

// outcome returns 0, 1, or 2 as shape me loses to, draws with, or beats
// shape opp.
func outcome(opp, me int) int {
	return (me - opp + 4) % 3
}

func roundScore(shape, outcome int) int {
	return shape + 1 + 3*outcome
}
