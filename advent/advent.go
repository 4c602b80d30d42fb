package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"advent2022/input"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/vaughan0/go-ini"
)

// verbose enables debugf output.
var verbose bool

func debugf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	configFile := flag.String("config", "", "INI config file (default "+defaultConfigFile+", if present)")
	flag.BoolVar(&verbose, "v", false, "Print diagnostics to stderr")
	profile := flag.String("fgprof", "", "Write a wall-clock profile of the run to this file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.verbose {
		verbose = true
	}

	var stop func() error
	if *profile != "" {
		if stop, err = startProfile(*profile); err != nil {
			log.Fatal(err)
		}
	}
	err = run(os.Stdout, name, fn, cfg.sources(name, flag.Args()[1:]), cfg.file.Section(name))
	if stop != nil {
		if err := stop(); err != nil {
			log.Println("Error writing profile:", err)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [input files...]\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
}

// A solution computes both parts of a puzzle from its input text. The
// section holds the puzzle's settings from the config file, if any.
type solution func(text string, section ini.Section) (part1, part2 interface{}, err error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// A source is one input file to run a solution against.
type source struct {
	name string
	path string
}

func run(w io.Writer, name string, fn solution, sources []source, section ini.Section) error {
	for _, src := range sources {
		text, err := input.Read(src.path)
		if err != nil {
			return err
		}
		debugf("%s: read %s from %s", src.name, humanize.Bytes(uint64(len(text))), src.path)
		part1, part2, err := fn(text, section)
		if err != nil {
			return fmt.Errorf("day %s, %s (%s): %w", name, src.name, src.path, err)
		}
		fmt.Fprintf(w, "Day %s - %s - part 1: %v\n", name, src.name, part1)
		fmt.Fprintf(w, "Day %s - %s - part 2: %v\n", name, src.name, part2)
	}
	return nil
}

func startProfile(filename string) (stop func() error, err error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
