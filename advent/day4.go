package main

import (
	"fmt"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("4", day4)
}

type sections struct {
	lo, hi int
}

func (s sections) contains(s1 sections) bool {
	return s.lo <= s1.lo && s1.hi <= s.hi
}

func (s sections) overlaps(s1 sections) bool {
	return s.lo <= s1.hi && s1.lo <= s.hi
}

func day4(text string, _ ini.Section) (interface{}, interface{}, error) {
	var contained, overlapping int
	for _, line := range input.Lines(text) {
		a, b, err := parseAssignment(line)
		if err != nil {
			return nil, nil, err
		}
		if a.contains(b) || b.contains(a) {
			contained++
		}
		if a.overlaps(b) {
			overlapping++
		}
	}
	return contained, overlapping, nil
}

func parseAssignment(line string) (a, b sections, err error) {
	var trailing string
	n, _ := fmt.Sscanf(line, "%d-%d,%d-%d%s", &a.lo, &a.hi, &b.lo, &b.hi, &trailing)
	if n != 4 || a.lo > a.hi || b.lo > b.hi {
		return a, b, fmt.Errorf("bad assignment pair %q", line)
	}
	return a, b, nil
}
