package main

/*
aoc solves the Advent of Code 2025 puzzles, days 1 through 7.  Each day is a
subcommand taking the path of its puzzle input:

  aoc day5 input/day5.txt
  aoc day5 -part=2 input/day5.txt.gz
  aoc all -dir=input

Inputs may be gzipped, and may live anywhere github.com/grailbio/base/file
can open.
*/

import (
	"github.com/grailbio/aoc/cmd/aoc/cmd"
)

func main() {
	cmd.Run()
}
