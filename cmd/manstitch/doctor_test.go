package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/statusd/manstitch/internal/config"
)

// writeLayout creates the static documentation files the doctor checks
// for, relative to the current directory.
func writeLayout(t *testing.T, cfg *config.Config) {
	t.Helper()
	for _, path := range []string{cfg.Docs.Themes, cfg.Docs.Preface, cfg.Docs.Postface} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunDoctor_Ready(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := config.DefaultConfig()
	cfg.Converter.Engine = "builtin"
	// The test binary path contains a separator, so the generator check
	// stats it instead of searching PATH.
	cfg.Generator.Command = []string{os.Args[0], "--help"}
	writeLayout(t, cfg)

	result := runDoctor(cfg)

	if result.Status != "ready" {
		t.Errorf("Status = %q, want ready (errors: %v, warnings: %v)",
			result.Status, result.Errors, result.Warnings)
	}
	if !result.Converter.Found {
		t.Error("builtin converter should always be found")
	}
	if !result.Generator.Found {
		t.Errorf("generator not found: %v", result.Errors)
	}
	if !result.Layout.Themes || !result.Layout.Preface || !result.Layout.Postface {
		t.Errorf("Layout = %+v, want all true", result.Layout)
	}
	if !result.System.TempWritable {
		t.Error("temp dir should be writable")
	}
}

func TestRunDoctor_MissingLayoutWarns(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := config.DefaultConfig()
	cfg.Converter.Engine = "builtin"
	cfg.Generator.Command = []string{os.Args[0]}

	result := runDoctor(cfg)

	if result.Status != "warnings" {
		t.Errorf("Status = %q, want warnings", result.Status)
	}
	if len(result.Warnings) != 3 {
		t.Errorf("Warnings = %v, want one per missing file", result.Warnings)
	}
}

func TestRunDoctor_GeneratorErrors(t *testing.T) {
	t.Run("MissingBinary", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Converter.Engine = "builtin"
		cfg.Generator.Command = []string{"/nonexistent/docgen"}

		result := runDoctor(cfg)

		if result.Status != "errors" {
			t.Errorf("Status = %q, want errors", result.Status)
		}
		if result.Generator.Found {
			t.Error("generator should not be found")
		}
	})

	t.Run("EmptyCommand", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Converter.Engine = "builtin"
		cfg.Generator.Command = nil

		result := runDoctor(cfg)

		if result.Status != "errors" {
			t.Errorf("Status = %q, want errors", result.Status)
		}
	})
}

func TestRunDoctorCmd_JSON(t *testing.T) {
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}

	// Default config: pandoc may or may not be installed, so only the
	// shape of the output is asserted, not the status.
	runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if result.Status == "" {
		t.Error("status missing from JSON output")
	}
	if result.System.OS == "" || result.System.Arch == "" {
		t.Errorf("system info missing: %+v", result.System)
	}
}

func TestRunDoctorCmd_BadConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}

	code := runDoctorCmd([]string{"-c", "/nonexistent/manstitch.yaml"}, env)

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if stderr.Len() == 0 {
		t.Error("expected error message on stderr")
	}
}

func TestPrintDoctorResult(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := config.DefaultConfig()
	cfg.Converter.Engine = "builtin"
	cfg.Generator.Command = []string{os.Args[0]}
	writeLayout(t, cfg)

	var buf bytes.Buffer
	printDoctorResult(&buf, runDoctor(cfg))
	out := buf.String()

	for _, want := range []string{
		"Converter",
		"builtin",
		"Generator",
		"Layout",
		"System",
		"Status: Ready to assemble",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}
