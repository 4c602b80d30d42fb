package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent2022/input"
	"github.com/vaughan0/go-ini"
)

func init() {
	register("7", day7)
}

const (
	diskSize   = 70000000
	spaceNeeds = 30000000
	smallDir   = 100000
)

func day7(text string, _ ini.Section) (interface{}, interface{}, error) {
	root, err := parseTerminal(text)
	if err != nil {
		return nil, nil, err
	}

	var sizes []int
	var walk func(*fsDir)
	walk = func(d *fsDir) {
		sizes = append(sizes, d.totalSize())
		for _, child := range d.dirs {
			walk(child)
		}
	}
	walk(root)
	debugf("%d directories, %d bytes used", len(sizes), root.totalSize())

	var small int
	for _, size := range sizes {
		if size <= smallDir {
			small += size
		}
	}

	free := diskSize - root.totalSize()
	if free >= spaceNeeds {
		return small, 0, nil
	}
	sort.Ints(sizes)
	i := sort.SearchInts(sizes, spaceNeeds-free)
	// The root is always large enough, so i is in range.
	return small, sizes[i], nil
}

type fsDir struct {
	dirs      map[string]*fsDir
	files     map[string]int
	sizeCache int
}

func newDir() *fsDir {
	return &fsDir{
		dirs:      make(map[string]*fsDir),
		files:     make(map[string]int),
		sizeCache: -1,
	}
}

func (d *fsDir) subdir(name string) *fsDir {
	child, ok := d.dirs[name]
	if !ok {
		child = newDir()
		d.dirs[name] = child
	}
	return child
}

func (d *fsDir) totalSize() int {
	if d.sizeCache != -1 {
		return d.sizeCache
	}
	var size int
	for _, n := range d.files {
		size += n
	}
	for _, child := range d.dirs {
		size += child.totalSize()
	}
	d.sizeCache = size
	return size
}

// parseTerminal rebuilds a directory tree from a transcript of cd and ls
// commands and their output. Listing a file or directory twice is
// harmless.
func parseTerminal(text string) (*fsDir, error) {
	root := newDir()
	path := []*fsDir{root} // path[len(path)-1] is the working directory
	listing := false
	for _, line := range input.Lines(text) {
		cwd := path[len(path)-1]
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "$":
			listing = false
			switch {
			case len(fields) == 2 && fields[1] == "ls":
				listing = true
			case len(fields) == 3 && fields[1] == "cd":
				switch arg := fields[2]; arg {
				case "/":
					path = path[:1]
				case "..":
					if len(path) == 1 {
						return nil, errors.New("cd .. from the root directory")
					}
					path = path[:len(path)-1]
				default:
					path = append(path, cwd.subdir(arg))
				}
			default:
				return nil, fmt.Errorf("unknown command %q", line)
			}
		case !listing:
			return nil, fmt.Errorf("output %q outside of ls", line)
		case len(fields) != 2:
			return nil, fmt.Errorf("bad ls output %q", line)
		case fields[0] == "dir":
			cwd.subdir(fields[1])
		default:
			size, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("bad file size in %q", line)
			}
			cwd.files[fields[1]] = size
		}
	}
	return root, nil
}
