// SPDX-License-Identifier: MIT

// Package testutil provides golden-file testing utilities for contractgen.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains any flags parsed from a "Flags: ..." line in the description.
	Flags []string

	// InputName is the archive name of the input file ("input" or "input.<ext>").
	InputName string

	// Input is the contents of the input file.
	Input []byte

	// Want maps relative paths (e.g., "clean") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input" or "input.<ext>" file
//   - One or more "want/<name>" files with expected output
//
// The description may contain a "Flags: flag1, flag2" line to pass flags
// to the function under test.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}

	c.parseFlags()

	for _, f := range ar.Files {
		switch {
		case f.Name == "input" || strings.HasPrefix(f.Name, "input."):
			if c.Input != nil {
				return nil, fmt.Errorf("duplicate input file %q (already have %q)", f.Name, c.InputName)
			}
			c.InputName = f.Name
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input[.ext] or want/*)", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing input file in archive")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseFlags extracts flags from "Flags: ..." line in the description.
func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Flags:") {
			continue
		}
		for _, f := range strings.Split(strings.TrimPrefix(line, "Flags:"), ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Flags = append(c.Flags, f)
			}
		}
		break
	}
}

// GenerateFunc produces named outputs from a case input.
type GenerateFunc func(input []byte, flags []string) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Input, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	Compare(t, c.Want, got)
}

// Compare reports missing, unexpected and differing files between want and got.
func Compare(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for wantFile := range want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	for gotFile := range got {
		if _, ok := want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue
		}
		if diff := cmp.Diff(Normalize(wantContent), Normalize(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// Normalize trims trailing whitespace from each line and trailing newlines
// from the content, so archives and generated text compare cleanly.
func Normalize(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}

	for _, f := range ar.Files {
		if f.Name == "input" || strings.HasPrefix(f.Name, "input.") {
			result.Files = append(result.Files, f)
			break
		}
	}

	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// RunGolden runs every txtar case in dir as a subtest. With update set,
// the want/ files of each archive are rewritten from generate instead.
func RunGolden(t *testing.T, dir string, update bool, generate GenerateFunc) {
	t.Helper()

	for _, tc := range LoadTestCases(t, dir) {
		t.Run(tc.Name, func(t *testing.T) {
			if !update {
				tc.Run(t, generate)
				return
			}
			got, err := generate(tc.Input, tc.Flags)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			file := filepath.Join(dir, tc.Name+".txtar")
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse %q: %v", file, err)
			}
			if err := os.WriteFile(file, FormatArchive(UpdateArchive(ar, got)), 0o644); err != nil {
				t.Fatalf("write updated file: %v", err)
			}
			t.Logf("updated %s", file)
		})
	}
}

// StripHeader removes the leading generated-code banner so tests compare
// just the code. Leading blank lines and //, "# ", /* and * comment lines
// are dropped.
func StripHeader(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		l := strings.TrimSpace(string(line))
		if l == "" || l == "#" || strings.HasPrefix(l, "//") || strings.HasPrefix(l, "# ") ||
			strings.HasPrefix(l, "/*") || strings.HasPrefix(l, "*") {
			continue
		}
		return bytes.Join(lines[i:], []byte("\n"))
	}
	return nil
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}
