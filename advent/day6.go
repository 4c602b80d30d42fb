package main

import (
	"errors"
	"strings"

	"github.com/vaughan0/go-ini"
)

func init() {
	register("6", day6)
}

func day6(text string, _ ini.Section) (interface{}, interface{}, error) {
	stream := strings.TrimSpace(text)
	packet, ok := findMarker(stream, 4)
	if !ok {
		return nil, nil, errors.New("no start-of-packet marker")
	}
	message, ok := findMarker(stream, 14)
	if !ok {
		return nil, nil, errors.New("no start-of-message marker")
	}
	return packet, message, nil
}

// findMarker returns the number of characters of s read once the last n
// characters were all different.
func findMarker(s string, n int) (int, bool) {
	var counts [256]int
	var dups int // characters in the window that occur more than once
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
		if counts[s[i]] == 2 {
			dups++
		}
		if i >= n {
			old := s[i-n]
			counts[old]--
			if counts[old] == 1 {
				dups--
			}
		}
		if i >= n-1 && dups == 0 {
			return i + 1, true
		}
	}
	return 0, false
}
