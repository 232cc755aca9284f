package driver_test

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/lambdawg/lambdawg/internal/driver"
)

// TestGoldenFixtures compiles each testdata/golden/*.txtar archive's
// "input.lwg" section and checks the emitted JavaScript contains every
// line of its "want.contains" section. Archives pack source and
// expectation together so a fixture reads as one file (spec.md §8).
func TestGoldenFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/golden/*.txtar")
	if err != nil {
		t.Fatalf("glob testdata/golden: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no golden fixtures found under testdata/golden")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parse archive: %v", err)
			}

			input, ok := section(archive, "input.lwg")
			if !ok {
				t.Fatalf("archive missing input.lwg section")
			}
			want, ok := section(archive, "want.contains")
			if !ok {
				t.Fatalf("archive missing want.contains section")
			}

			result := driver.Compile(input, driver.Options{Filename: filepath.Base(path)})
			if !result.Success {
				t.Fatalf("expected successful compile, got errors: %v", result.Errors)
			}
			for _, line := range strings.Split(strings.TrimRight(want, "\n"), "\n") {
				if line == "" {
					continue
				}
				if !strings.Contains(result.Code, line) {
					t.Fatalf("emitted code missing expected substring %q:\n%s", line, result.Code)
				}
			}
		})
	}
}

func section(archive *txtar.Archive, name string) (string, bool) {
	for _, f := range archive.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}
	return "", false
}
