package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/lambdawg/lambdawg/internal/config"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/driver"
)

var verboseLog = log.New(os.Stderr, "lambdawg: ", 0)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug, please report it")
			os.Exit(1)
		}
	}()

	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "-v", "-version", "--version":
			fmt.Println("lambdawg " + config.Version)
			return
		case "-h", "-help", "--help":
			printUsage()
			return
		}
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "compile":
		runCompile(args)
	case "check":
		runCheck(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lambdawg — compiles Lambdawg source to JavaScript

Usage:
  lambdawg compile <file> [-o <output>] [-verbose] [-skip-type-check]
  lambdawg check <file> [-verbose] [-skip-type-check]
  lambdawg -version
  lambdawg -help

A lambdawg.yaml project file next to <file>, if present, supplies
defaults for -o and -skip-type-check.`)
}

type flags struct {
	out           string
	verbose       bool
	skipTypeCheck bool
}

func parseFlags(args []string) (file string, f flags) {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-verbose", "--verbose":
			f.verbose = true
		case "-skip-type-check", "--skip-type-check":
			f.skipTypeCheck = true
		case "-o", "--o":
			if i+1 < len(args) {
				i++
				f.out = args[i]
			}
		default:
			if !strings.HasPrefix(a, "-") && file == "" {
				file = a
			}
		}
	}
	return file, f
}

func runCompile(args []string) {
	file, f := parseFlags(args)
	if file == "" {
		fmt.Fprintln(os.Stderr, "compile: missing source file")
		os.Exit(1)
	}

	cfg := loadProjectConfig(file, f.verbose)
	opts := driver.Options{
		Filename:      file,
		SkipTypeCheck: f.skipTypeCheck || cfg.SkipTypeCheck,
	}

	src := readSource(file)

	start := time.Now()
	result := driver.Compile(src, opts)
	if f.verbose {
		verboseLog.Printf("compile %s: %s (invocation %s)", file, time.Since(start), result.InvocationID)
	}

	printDiagnostics(result.Warnings, result.Errors)
	if !result.Success {
		os.Exit(1)
	}

	out := f.out
	if out == "" {
		out = cfg.OutDir
	}
	writeOutput(file, out, result.Code)
}

func runCheck(args []string) {
	file, f := parseFlags(args)
	if file == "" {
		fmt.Fprintln(os.Stderr, "check: missing source file")
		os.Exit(1)
	}

	cfg := loadProjectConfig(file, f.verbose)
	opts := driver.Options{
		Filename:      file,
		SkipTypeCheck: f.skipTypeCheck || cfg.SkipTypeCheck,
	}

	src := readSource(file)

	start := time.Now()
	result := driver.Check(src, opts)
	if f.verbose {
		verboseLog.Printf("check %s: %s (invocation %s)", file, time.Since(start), result.InvocationID)
	}

	printDiagnostics(result.Warnings, result.Errors)
	if !result.Success {
		os.Exit(1)
	}
}

func loadProjectConfig(sourceFile string, verbose bool) config.ProjectConfig {
	path := filepath.Join(filepath.Dir(sourceFile), "lambdawg.yaml")
	cfg, err := config.LoadProjectConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read %s: %v\n", path, err)
		return config.ProjectConfig{}
	}
	if verbose {
		verboseLog.Printf("loaded project config from %s", path)
	}
	return cfg
}

func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}
	return string(data)
}

func writeOutput(sourceFile, outDir, code string) {
	name := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile)) + ".js"
	var outPath string
	if outDir == "" {
		outPath = filepath.Join(filepath.Dir(sourceFile), name)
	} else {
		outPath = filepath.Join(outDir, name)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", outDir, err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", outPath, err)
		os.Exit(1)
	}
}

// printDiagnostics renders warnings then errors. On an interactive
// terminal each diagnostic's hint list is expanded; piped output stays
// compact, one line per diagnostic (SPEC_FULL.md §11).
func printDiagnostics(warnings, errors []diagnostics.Diagnostic) {
	expanded := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, d := range warnings {
		printDiagnostic(d, expanded)
	}
	for _, d := range errors {
		printDiagnostic(d, expanded)
	}
}

func printDiagnostic(d diagnostics.Diagnostic, expanded bool) {
	fmt.Fprintln(os.Stderr, d.String())
	if !expanded || len(d.Hints) == 0 {
		return
	}
	for _, h := range d.Hints {
		fmt.Fprintf(os.Stderr, "  hint: %s\n", h)
	}
}
