package crane

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

var sample = strings.Join([]string{
	"    [D]    ",
	"[N] [C]    ",
	"[Z] [M] [P]",
	" 1   2   3 ",
	"",
	"move 1 from 2 to 1",
	"move 3 from 1 to 3",
	"move 2 from 2 to 1",
	"move 1 from 1 to 2",
	"",
}, "\n")

func stackStrings(s Stacks) map[int]string {
	m := make(map[int]string)
	for id, crates := range s {
		m[id] = string(crates)
	}
	return m
}

func fromStrings(m map[int]string) Stacks {
	s := make(Stacks)
	for id, crates := range m {
		s[id] = []byte(crates)
	}
	return s
}

func TestParse(t *testing.T) {
	s, instructions, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	wantStacks := map[int]string{1: "NZ", 2: "DCM", 3: "P"}
	if diff := pretty.Diff(stackStrings(s), wantStacks); len(diff) > 0 {
		t.Errorf("stacks: got %v; want %v", stackStrings(s), wantStacks)
	}
	wantInstructions := []Instruction{
		{N: 1, From: 2, To: 1},
		{N: 3, From: 1, To: 3},
		{N: 2, From: 2, To: 1},
		{N: 1, From: 1, To: 2},
	}
	if diff := pretty.Diff(instructions, wantInstructions); len(diff) > 0 {
		t.Errorf("instructions: diff:\n%s", strings.Join(diff, "\n"))
	}
}

func TestParseWithoutInstructions(t *testing.T) {
	s, instructions, err := Parse("[A]\n 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(instructions) != 0 {
		t.Errorf("got %d instructions; want 0", len(instructions))
	}
	if got := Tops(s); got != "A" {
		t.Errorf("got tops %q; want %q", got, "A")
	}
}

func TestParseDiagramErrors(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{"   "},
		{"[A]", " x "},
		{"[A] [B]", " 1"},
		{"[A]", " 1  1"},
	} {
		if _, err := ParseDiagram(lines); !errors.Is(err, ErrMalformedDiagram) {
			t.Errorf("ParseDiagram(%q): got %v; want ErrMalformedDiagram", lines, err)
		}
	}
}

func TestParseInstruction(t *testing.T) {
	got, err := ParseInstruction("move 12 from 3 to 7")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Instruction{N: 12, From: 3, To: 7}); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
	if s := got.String(); s != "move 12 from 3 to 7" {
		t.Errorf("String: got %q", s)
	}

	for _, line := range []string{
		"",
		"move 1 from 2",
		"move one from 2 to 3",
		"move 1 from 2 to 3 now",
		"move -1 from 2 to 3",
		"move 0 from 2 to 3",
		"move 1 from 0 to 3",
		"lift 1 from 2 to 3",
	} {
		if _, err := ParseInstruction(line); !errors.Is(err, ErrMalformedInstruction) {
			t.Errorf("ParseInstruction(%q): got %v; want ErrMalformedInstruction", line, err)
		}
	}
}

func TestApply(t *testing.T) {
	for _, tt := range []struct {
		mode Mode
		want map[int]string
	}{
		{OneAtATime, map[int]string{1: "", 2: "DNZMC"}},
		{Block, map[int]string{1: "", 2: "ZNDMC"}},
	} {
		s := fromStrings(map[int]string{1: "ZND", 2: "MC"})
		if err := s.Apply(Instruction{N: 3, From: 1, To: 2}, tt.mode); err != nil {
			t.Fatalf("%s: %s", tt.mode, err)
		}
		if got := stackStrings(s); len(pretty.Diff(got, tt.want)) > 0 {
			t.Errorf("%s: got %v; want %v", tt.mode, got, tt.want)
		}
	}
}

func TestApplySameStack(t *testing.T) {
	for _, mode := range []Mode{OneAtATime, Block} {
		s := fromStrings(map[int]string{1: "ABC"})
		if err := s.Apply(Instruction{N: 2, From: 1, To: 1}, mode); err != nil {
			t.Fatalf("%s: %s", mode, err)
		}
		if got := string(s[1]); got != "ABC" {
			t.Errorf("%s: got %q; want %q", mode, got, "ABC")
		}
	}
}

func TestApplyUnderflow(t *testing.T) {
	for _, mode := range []Mode{OneAtATime, Block} {
		s := fromStrings(map[int]string{1: "AB", 2: "C"})
		in := Instruction{N: 5, From: 1, To: 2}
		err := s.Apply(in, mode)
		var ue *UnderflowError
		if !errors.As(err, &ue) {
			t.Fatalf("%s: got %v; want *UnderflowError", mode, err)
		}
		if ue.Instruction != in || ue.Have != 2 {
			t.Errorf("%s: got %+v", mode, ue)
		}
		want := map[int]string{1: "AB", 2: "C"}
		if got := stackStrings(s); len(pretty.Diff(got, want)) > 0 {
			t.Errorf("%s: stacks changed to %v", mode, got)
		}
	}
}

func TestApplyUnknownStack(t *testing.T) {
	for _, tt := range []struct {
		in Instruction
		id int
	}{
		{Instruction{N: 1, From: 1, To: 7}, 7},
		{Instruction{N: 1, From: 7, To: 1}, 7},
		{Instruction{N: 1, From: 9, To: 9}, 9},
	} {
		s, _, err := Parse("[A] [B]\n 1   2\n")
		if err != nil {
			t.Fatal(err)
		}
		err = s.Apply(tt.in, Block)
		var use *UnknownStackError
		if !errors.As(err, &use) {
			t.Fatalf("%s: got %v; want *UnknownStackError", tt.in, err)
		}
		if use.ID != tt.id || use.Instruction != tt.in {
			t.Errorf("%s: got %+v", tt.in, use)
		}
		if !errors.Is(err, ErrMalformedInstruction) {
			t.Errorf("%s: %v does not match ErrMalformedInstruction", tt.in, err)
		}
		want := map[int]string{1: "A", 2: "B"}
		if got := stackStrings(s); len(pretty.Diff(got, want)) > 0 {
			t.Errorf("%s: stacks changed to %v", tt.in, got)
		}
		if got := Render(s); got != " 1   2\n[A] [B]" {
			t.Errorf("%s: rendered\n%s", tt.in, got)
		}
	}
}

func TestRun(t *testing.T) {
	for _, tt := range []struct {
		mode Mode
		want string
	}{
		{OneAtATime, "CMZ"},
		{Block, "MCD"},
	} {
		s, instructions, err := Parse(sample)
		if err != nil {
			t.Fatal(err)
		}
		total := s.Count()
		var steps int
		trace := func(i int, in Instruction, s Stacks) {
			if i != steps {
				t.Errorf("%s: trace got index %d; want %d", tt.mode, i, steps)
			}
			steps++
			if n := s.Count(); n != total {
				t.Errorf("%s: after %s: %d crates; want %d", tt.mode, in, n, total)
			}
		}
		if err := Run(s, instructions, tt.mode, trace); err != nil {
			t.Fatalf("%s: %s", tt.mode, err)
		}
		if steps != len(instructions) {
			t.Errorf("%s: traced %d steps; want %d", tt.mode, steps, len(instructions))
		}
		if got := Tops(s); got != tt.want {
			t.Errorf("%s: got tops %q; want %q", tt.mode, got, tt.want)
		}
	}
}

func TestRunStopsAtUnderflow(t *testing.T) {
	s := fromStrings(map[int]string{1: "AB", 2: ""})
	instructions := []Instruction{
		{N: 1, From: 1, To: 2},
		{N: 3, From: 1, To: 2},
		{N: 1, From: 2, To: 1},
	}
	err := Run(s, instructions, Block, nil)
	var ue *UnderflowError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v; want *UnderflowError", err)
	}
	want := map[int]string{1: "B", 2: "A"}
	if got := stackStrings(s); len(pretty.Diff(got, want)) > 0 {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestRender(t *testing.T) {
	s, _, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	before := stackStrings(s)
	want := strings.Join([]string{
		" 1   2   3",
		"[N] [D] [P]",
		"[Z] [C]",
		"    [M]",
	}, "\n")
	for i := 0; i < 2; i++ {
		if got := Render(s); got != want {
			t.Errorf("Render: got\n%s\nwant\n%s", got, want)
		}
	}
	if diff := pretty.Diff(stackStrings(s), before); len(diff) > 0 {
		t.Errorf("Render changed the stacks: %s", strings.Join(diff, "; "))
	}

	if got := Render(fromStrings(map[int]string{1: "", 2: ""})); got != " 1   2" {
		t.Errorf("empty stacks: got %q", got)
	}
}

func TestRenderWideIDs(t *testing.T) {
	m := make(map[int]string)
	for id := 1; id <= 11; id++ {
		m[id] = ""
	}
	m[1], m[10], m[11] = "A", "BD", "C"
	s := fromStrings(m)

	rows := strings.Split(Render(s), "\n")
	if len(rows) != 3 {
		t.Fatalf("got %d rows; want 3:\n%s", len(rows), strings.Join(rows, "\n"))
	}
	header := rows[0]
	for _, tt := range []struct {
		id    string
		crate string
	}{
		{"1", "[A]"},
		{"10", "[B]"},
		{"11", "[C]"},
	} {
		col := strings.Index(header+" ", " "+tt.id+" ") + 1
		if i := strings.Index(rows[1], tt.crate); i+1 != col {
			t.Errorf("crate %s at column %d; want %d under id %s:\n%s\n%s", tt.crate, i+1, col, tt.id, header, rows[1])
		}
	}
	if got, want := strings.Index(rows[2], "[D]"), strings.Index(rows[1], "[B]"); got != want {
		t.Errorf("second crate of stack 10 at column %d; want %d", got, want)
	}

	lines := append(rows[1:], header)
	s1, err := ParseDiagram(lines)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(stackStrings(s1), stackStrings(s)); len(diff) > 0 {
		t.Errorf("parsing the rendered grid: %s", strings.Join(diff, "; "))
	}
}

func TestClone(t *testing.T) {
	s := fromStrings(map[int]string{1: "AB", 2: "C"})
	s1 := s.Clone()
	if err := s1.Apply(Instruction{N: 2, From: 1, To: 2}, Block); err != nil {
		t.Fatal(err)
	}
	want := map[int]string{1: "AB", 2: "C"}
	if got := stackStrings(s); len(pretty.Diff(got, want)) > 0 {
		t.Errorf("original changed to %v", got)
	}
}

func BenchmarkRun(b *testing.B) {
	s, instructions, err := Parse(sample)
	if err != nil {
		b.Fatal(err)
	}
	for _, mode := range []Mode{OneAtATime, Block} {
		b.Run(mode.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := Run(s.Clone(), instructions, mode, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
