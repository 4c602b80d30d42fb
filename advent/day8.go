package main

import (
	"fmt"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("8", day8)
}

func day8(text string, _ ini.Section) (interface{}, interface{}, error) {
	g, err := parseForest(text)
	if err != nil {
		return nil, nil, err
	}
	var visible, best int
	for y := range g {
		for x := range g[y] {
			vis, score := g.view(x, y)
			if vis {
				visible++
			}
			best = max(best, score)
		}
	}
	return visible, best, nil
}

// forest is a grid of tree heights, indexed [y][x].
type forest [][]int

var forestDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// view reports whether the tree at (x, y) can be seen from outside the
// forest and its scenic score: the product of how many trees it can see in
// each direction before one at least as tall blocks the view.
func (g forest) view(x, y int) (visible bool, score int) {
	h := g[y][x]
	score = 1
	for _, d := range forestDirs {
		var n int
		blocked := false
		for x1, y1 := x+d[0], y+d[1]; y1 >= 0 && y1 < len(g) && x1 >= 0 && x1 < len(g[y1]); x1, y1 = x1+d[0], y1+d[1] {
			n++
			if g[y1][x1] >= h {
				blocked = true
				break
			}
		}
		if !blocked {
			visible = true
		}
		score *= n
	}
	return visible, score
}

func parseForest(text string) (forest, error) {
	var g forest
	for _, line := range input.Lines(text) {
		if len(g) > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("row %q has %d trees; want %d", line, len(line), len(g[0]))
		}
		row := make([]int, len(line))
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("bad tree height %q in %q", c, line)
			}
			row[i] = int(c - '0')
		}
		g = append(g, row)
	}
	return g, nil
}
