package main

import (
	"fmt"
	"math/bits"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("3", day3)
}

func day3(text string, _ ini.Section) (interface{}, interface{}, error) {
	sacks := input.Lines(text)

	var sum1 int
	for _, sack := range sacks {
		if len(sack)%2 != 0 {
			return nil, nil, fmt.Errorf("rucksack %q has an odd number of items", sack)
		}
		half := len(sack) / 2
		p, err := commonItem(sack[:half], sack[half:])
		if err != nil {
			return nil, nil, err
		}
		sum1 += p
	}

	if len(sacks)%3 != 0 {
		return nil, nil, fmt.Errorf("%d rucksacks do not divide into groups of three", len(sacks))
	}
	var sum2 int
	for i := 0; i < len(sacks); i += 3 {
		p, err := commonItem(sacks[i : i+3]...)
		if err != nil {
			return nil, nil, err
		}
		sum2 += p
	}
	return sum1, sum2, nil
}

// commonItem returns the priority of the single item type present in all
// of groups.
func commonItem(groups ...string) (int, error) {
	common := ^uint64(0)
	for _, g := range groups {
		var set uint64
		for i := 0; i < len(g); i++ {
			p := priority(g[i])
			if p == 0 {
				return 0, fmt.Errorf("bad item %q in %q", g[i], g)
			}
			set |= 1 << p
		}
		common &= set
	}
	if bits.OnesCount64(common) != 1 {
		return 0, fmt.Errorf("%q do not share exactly one item type", groups)
	}
	return bits.TrailingZeros64(common), nil
}

// priority maps a-z to 1-26 and A-Z to 27-52, and anything else to 0.
func priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}
