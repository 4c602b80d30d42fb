package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"advent2022/input"
	"github.com/dustin/go-humanize"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("11", day11)
}

// defaultMonkeyRounds are the round counts for parts 1 and 2.
var defaultMonkeyRounds = [2]int{20, 10000}

func day11(text string, section ini.Section) (interface{}, interface{}, error) {
	rounds, err := intPair(section, "rounds", defaultMonkeyRounds, 1)
	if err != nil {
		return nil, nil, err
	}
	monkeys, err := parseMonkeys(text)
	if err != nil {
		return nil, nil, err
	}

	// Part 2 has no relief, so worry levels are kept modulo the least
	// common multiple of the divisors. That preserves every monkey's test.
	base := 1
	for _, m := range monkeys {
		base = lcm(base, m.div)
	}
	part1 := monkeyBusiness(monkeys, rounds[0], func(w int) int { return w / 3 })
	part2 := monkeyBusiness(monkeys, rounds[1], func(w int) int { return w % base })
	return part1, part2, nil
}

type monkey struct {
	items   []int
	op      byte // '+' or '*'
	operand int  // -1 means the old worry level
	div     int
	ifTrue  int
	ifFalse int
}

func (m *monkey) inspect(old int) int {
	v := m.operand
	if v < 0 {
		v = old
	}
	if m.op == '+' {
		return old + v
	}
	return old * v
}

// monkeyBusiness plays the given number of rounds on a copy of monkeys and
// returns the product of the two highest inspection counts.
func monkeyBusiness(monkeys []monkey, rounds int, relief func(int) int) int {
	ms := make([]monkey, len(monkeys))
	for i, m := range monkeys {
		ms[i] = m
		ms[i].items = slices.Clone(m.items)
	}
	counts := make([]int, len(ms))
	for r := 0; r < rounds; r++ {
		for i := range ms {
			m := &ms[i]
			for _, w := range m.items {
				counts[i]++
				w = relief(m.inspect(w))
				target := m.ifFalse
				if w%m.div == 0 {
					target = m.ifTrue
				}
				ms[target].items = append(ms[target].items, w)
			}
			m.items = m.items[:0]
		}
	}
	debugf("%s rounds: inspections %v", humanize.Comma(int64(rounds)), counts)
	slices.Sort(counts)
	return counts[len(counts)-1] * counts[len(counts)-2]
}

func parseMonkeys(text string) ([]monkey, error) {
	chunks := input.Chunks(text)
	if len(chunks) < 2 {
		return nil, fmt.Errorf("need at least two monkeys; got %d", len(chunks))
	}
	monkeys := make([]monkey, len(chunks))
	for i, chunk := range chunks {
		m, err := parseMonkey(i, chunk)
		if err != nil {
			return nil, fmt.Errorf("monkey %d: %w", i, err)
		}
		monkeys[i] = m
	}
	for i, m := range monkeys {
		for _, target := range []int{m.ifTrue, m.ifFalse} {
			if target == i || target >= len(monkeys) {
				return nil, fmt.Errorf("monkey %d: bad target monkey %d", i, target)
			}
		}
	}
	return monkeys, nil
}

func parseMonkey(id int, lines []string) (monkey, error) {
	var m monkey
	if len(lines) != 6 {
		return m, fmt.Errorf("got %d lines; want 6", len(lines))
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	header, ok := strings.CutSuffix(lines[0], ":")
	if !ok {
		return m, fmt.Errorf("bad header %q", lines[0])
	}
	n, err := cutInt(header, "Monkey ")
	if err != nil {
		return m, err
	}
	if n != id {
		return m, fmt.Errorf("out of order: found monkey %d", n)
	}

	items, ok := strings.CutPrefix(lines[1], "Starting items:")
	if !ok {
		return m, fmt.Errorf("expected starting items; got %q", lines[1])
	}
	if items = strings.TrimSpace(items); items != "" {
		for _, s := range strings.Split(items, ",") {
			w, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return m, fmt.Errorf("bad item in %q", lines[1])
			}
			m.items = append(m.items, w)
		}
	}

	expr, ok := strings.CutPrefix(lines[2], "Operation: new = old ")
	if !ok {
		return m, fmt.Errorf("bad operation %q", lines[2])
	}
	sym, arg, ok := strings.Cut(expr, " ")
	if !ok || (sym != "+" && sym != "*") {
		return m, fmt.Errorf("bad operation %q", lines[2])
	}
	m.op = sym[0]
	if arg == "old" {
		m.operand = -1
	} else if m.operand, err = strconv.Atoi(arg); err != nil || m.operand < 0 {
		return m, fmt.Errorf("bad operand in %q", lines[2])
	}

	if m.div, err = cutInt(lines[3], "Test: divisible by "); err != nil {
		return m, err
	}
	if m.div <= 0 {
		return m, fmt.Errorf("bad divisor in %q", lines[3])
	}
	if m.ifTrue, err = cutInt(lines[4], "If true: throw to monkey "); err != nil {
		return m, err
	}
	if m.ifFalse, err = cutInt(lines[5], "If false: throw to monkey "); err != nil {
		return m, err
	}
	return m, nil
}

func cutInt(line, prefix string) (int, error) {
	s, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return 0, fmt.Errorf("expected %q; got %q", prefix, line)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad number in %q", line)
	}
	return n, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
