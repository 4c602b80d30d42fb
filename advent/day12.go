package main

import (
	"errors"
	"fmt"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("12", day12)
}

func day12(text string, _ ini.Section) (interface{}, interface{}, error) {
	hm, err := parseHeightmap(text)
	if err != nil {
		return nil, nil, err
	}
	dist := hm.distancesToEnd()
	fromStart := dist[hm.start.y][hm.start.x]
	if fromStart < 0 {
		return nil, nil, errors.New("no path from S to E")
	}
	best := fromStart
	for y, row := range hm.elev {
		for x, e := range row {
			if d := dist[y][x]; e == 'a' && d >= 0 {
				best = min(best, d)
			}
		}
	}
	return fromStart, best, nil
}

type gridPos struct{ x, y int }

type heightmap struct {
	elev       [][]byte // 'a' through 'z', indexed [y][x]
	start, end gridPos
}

// distancesToEnd runs a breadth-first search backwards from the end. Each
// cell gets the fewest steps needed to climb from it to the end, where a
// step may rise by at most one level, or -1 if the end is out of reach.
func (hm *heightmap) distancesToEnd() [][]int {
	dist := make([][]int, len(hm.elev))
	for y, row := range hm.elev {
		dist[y] = make([]int, len(row))
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	dist[hm.end.y][hm.end.x] = 0
	queue := []gridPos{hm.end}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range forestDirs {
			q := gridPos{p.x + d[0], p.y + d[1]}
			if q.y < 0 || q.y >= len(hm.elev) || q.x < 0 || q.x >= len(hm.elev[q.y]) {
				continue
			}
			if dist[q.y][q.x] >= 0 || hm.elev[q.y][q.x]+1 < hm.elev[p.y][p.x] {
				continue
			}
			dist[q.y][q.x] = dist[p.y][p.x] + 1
			queue = append(queue, q)
		}
	}
	return dist
}

func parseHeightmap(text string) (*heightmap, error) {
	hm := new(heightmap)
	var haveStart, haveEnd bool
	for y, line := range input.Lines(text) {
		if y > 0 && len(line) != len(hm.elev[0]) {
			return nil, fmt.Errorf("row %q has %d cells; want %d", line, len(line), len(hm.elev[0]))
		}
		row := []byte(line)
		for x, c := range row {
			switch {
			case c == 'S':
				if haveStart {
					return nil, errors.New("more than one S")
				}
				haveStart = true
				hm.start = gridPos{x, y}
				row[x] = 'a'
			case c == 'E':
				if haveEnd {
					return nil, errors.New("more than one E")
				}
				haveEnd = true
				hm.end = gridPos{x, y}
				row[x] = 'z'
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("bad elevation %q in %q", c, line)
			}
		}
		hm.elev = append(hm.elev, row)
	}
	if !haveStart || !haveEnd {
		return nil, errors.New("map needs both S and E")
	}
	return hm, nil
}
