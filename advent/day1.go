package main

import (
	"errors"
	"sort"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("1", day1)
}

// day1 totals the calories carried by each elf (one blank-line separated
// group of lines per elf) and reports the largest total and the sum of the
// three largest.
func day1(text string, _ ini.Section) (interface{}, interface{}, error) {
	elves, err := input.ParseChunks(text, input.Int, false)
	if err != nil {
		return nil, nil, err
	}
	if len(elves) == 0 {
		return nil, nil, errors.New("no elves in input")
	}
	totals := make([]int, len(elves))
	for i, items := range elves {
		for _, n := range items {
			totals[i] += n
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))
	var top3 int
	for _, n := range totals[:min(3, len(totals))] {
		top3 += n
	}
	return totals[0], top3, nil
}
