package main

import (
	"advent2022/crane"
	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("5", day5)
}

// day5 runs the crane instructions with both crane models and reports the
// top crate of each stack afterwards.
func day5(text string, _ ini.Section) (interface{}, interface{}, error) {
	stacks, instructions, err := crane.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	debugf("stacks before:\n%s", crane.Render(stacks))
	debugf("instructions: %# v", pretty.Formatter(instructions))

	var trace func(int, crane.Instruction, crane.Stacks)
	if verbose {
		trace = func(i int, in crane.Instruction, s crane.Stacks) {
			debugf("step %d: %s\n%s", i+1, in, crane.Render(s))
		}
	}
	var tops [2]string
	for i, mode := range []crane.Mode{crane.OneAtATime, crane.Block} {
		s := stacks.Clone()
		if err := crane.Run(s, instructions, mode, trace); err != nil {
			return nil, nil, err
		}
		debugf("stacks after (%s):\n%s", mode, crane.Render(s))
		tops[i] = crane.Tops(s)
	}
	return tops[0], tops[1], nil
}
