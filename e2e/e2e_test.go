// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package e2e runs the contractgen binary against txtar scenarios.
//
// Each archive in testdata holds the files of a working directory (for
// example input.yaml or contractgen.yaml) and the expected results under
// want/. The comment section carries the command line:
//
//	Flags: generate -d input.yaml -t docs
//	Exit: 1
//
// want/stdout and want/stderr are compared with the process output, with
// the working directory replaced by $WORK. Any other want/<path> is
// compared with the file the command wrote at <path>.
//
// Run with -update to rewrite the expectations from the current binary.
package e2e

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files")

var binaryPath string

func TestMain(m *testing.M) {
	flag.Parse()

	tmpDir, err := os.MkdirTemp("", "contractgen-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryName := "contractgen"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath = filepath.Join(tmpDir, binaryName)

	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/contractgen")
	build.Dir = ".."
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

type scenario struct {
	args   []string
	exit   int
	files  []txtar.File
	stdout *txtar.File
	stderr *txtar.File
	want   []txtar.File
}

func parseScenario(t *testing.T, ar *txtar.Archive) scenario {
	t.Helper()
	var sc scenario
	for line := range strings.Lines(string(ar.Comment)) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Flags:"):
			sc.args = strings.Fields(strings.TrimPrefix(line, "Flags:"))
		case strings.HasPrefix(line, "Exit:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Exit:")))
			if err != nil {
				t.Fatalf("bad Exit line %q: %v", line, err)
			}
			sc.exit = n
		}
	}
	if len(sc.args) == 0 {
		t.Fatal("archive has no Flags line")
	}

	for i := range ar.Files {
		f := &ar.Files[i]
		name, ok := strings.CutPrefix(f.Name, "want/")
		switch {
		case !ok:
			sc.files = append(sc.files, *f)
		case name == "stdout":
			sc.stdout = f
		case name == "stderr":
			sc.stderr = f
		default:
			sc.want = append(sc.want, txtar.File{Name: name, Data: f.Data})
		}
	}
	return sc
}

func TestE2E(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no test archives found in testdata/")
	}

	for _, path := range archives {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("failed to parse archive: %v", err)
			}
			sc := parseScenario(t, ar)

			work := workDir(t)
			for _, f := range sc.files {
				dst := filepath.Join(work, filepath.FromSlash(f.Name))
				if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
					t.Fatal(err)
				}
			}

			cmd := exec.Command(binaryPath, sc.args...)
			cmd.Dir = work
			cmd.Env = isolatedEnv()
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			exit := 0
			if err := cmd.Run(); err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("run: %v", err)
				}
				exit = exitErr.ExitCode()
			}
			if exit != sc.exit {
				t.Fatalf("exit code = %d, want %d\nstderr:\n%s", exit, sc.exit, stderr.String())
			}

			if *update {
				updateArchive(t, path, ar, work, normalize(stdout.String(), work), normalize(stderr.String(), work))
				return
			}

			if sc.stdout != nil {
				compare(t, "stdout", string(sc.stdout.Data), normalize(stdout.String(), work))
			}
			if sc.stderr != nil {
				compare(t, "stderr", string(sc.stderr.Data), normalize(stderr.String(), work))
			}
			for _, f := range sc.want {
				got, err := os.ReadFile(filepath.Join(work, filepath.FromSlash(f.Name)))
				if err != nil {
					t.Errorf("expected file %s: %v", f.Name, err)
					continue
				}
				compare(t, f.Name, string(f.Data), string(got))
			}
		})
	}
}

// workDir returns a fresh directory with symlinks resolved so the paths
// the binary prints match the ones the test normalizes.
func workDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

// isolatedEnv drops CONTRACTGEN_ variables from the test environment.
func isolatedEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "CONTRACTGEN_") {
			env = append(env, kv)
		}
	}
	return env
}

func normalize(s, work string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, work, "$WORK")
	return strings.ReplaceAll(s, filepath.ToSlash(work), "$WORK")
}

func compare(t *testing.T, name, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// updateArchive rewrites the want/ section of an archive from the current
// run, keeping the inputs and the comment.
func updateArchive(t *testing.T, path string, ar *txtar.Archive, work, stdout, stderr string) {
	t.Helper()
	out := &txtar.Archive{Comment: ar.Comment}
	var wanted []string
	for _, f := range ar.Files {
		name, ok := strings.CutPrefix(f.Name, "want/")
		if !ok {
			out.Files = append(out.Files, f)
			continue
		}
		if name != "stdout" && name != "stderr" {
			wanted = append(wanted, name)
		}
	}
	if stdout != "" {
		out.Files = append(out.Files, txtar.File{Name: "want/stdout", Data: []byte(stdout)})
	}
	if stderr != "" {
		out.Files = append(out.Files, txtar.File{Name: "want/stderr", Data: []byte(stderr)})
	}
	for _, name := range wanted {
		data, err := os.ReadFile(filepath.Join(work, filepath.FromSlash(name)))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		out.Files = append(out.Files, txtar.File{Name: "want/" + name, Data: data})
	}
	if err := os.WriteFile(path, txtar.Format(out), 0o644); err != nil {
		t.Fatalf("failed to update archive: %v", err)
	}
	t.Logf("updated %s", path)
}
