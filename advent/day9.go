package main

import (
	"advent2022/rope"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("9", day9)
}

// defaultRopeLengths are the knot counts, head and tail included, of the
// ropes simulated for parts 1 and 2.
var defaultRopeLengths = [2]int{2, 10}

func day9(text string, section ini.Section) (interface{}, interface{}, error) {
	lengths, err := intPair(section, "knots", defaultRopeLengths, 2)
	if err != nil {
		return nil, nil, err
	}
	moves, err := rope.ParseMoves(text)
	if err != nil {
		return nil, nil, err
	}
	if verbose && len(moves) <= 20 {
		debugf("moves: %# v", pretty.Formatter(moves))
	}
	var visited [2]int
	for i, n := range lengths {
		visited[i] = rope.Simulate(moves, n)
		debugf("%d knots: tail visited %s positions", n, humanize.Comma(int64(visited[i])))
	}
	return visited[0], visited[1], nil
}
