package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/statusd/manstitch/internal/config"
	"github.com/statusd/manstitch/internal/pipeline"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	Generator generatorInfo `json:"generator"`
	Layout    layoutInfo    `json:"layout"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds converter detection results.
type converterInfo struct {
	Engine  string `json:"engine"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// generatorInfo holds generator command detection results.
type generatorInfo struct {
	Command string `json:"command"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
}

// layoutInfo holds documentation layout check results.
type layoutInfo struct {
	Themes   bool `json:"themes"`
	Preface  bool `json:"preface"`
	Postface bool `json:"postface"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	configName := ""
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--json":
			jsonOutput = true
		case (args[i] == "-c" || args[i] == "--config") && i+1 < len(args):
			i++
			configName = args[i]
		}
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitUsage
		}
		cfg = loaded
	}

	result := runDoctor(cfg)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkConverter(cfg, result)
	checkGenerator(cfg, result)
	checkLayout(cfg, result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConverter verifies the configured Markdown to roff engine.
func checkConverter(cfg *config.Config, result *doctorResult) {
	engine := cfg.Converter.Engine
	if engine == "" {
		engine = pipeline.EnginePandoc
	}
	result.Converter.Engine = engine

	if engine == pipeline.EngineBuiltin {
		// In-process, nothing to locate.
		result.Converter.Found = true
		return
	}

	bin := cfg.Converter.PandocPath
	if bin == "" {
		bin = pipeline.DefaultPandocPath
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("pandoc not found (%q). Install pandoc or use --engine=builtin", bin))
		return
	}

	result.Converter.Found = true
	result.Converter.Path = path

	out, err := exec.Command(path, "--version").Output()
	if err == nil {
		if line, _, ok := strings.Cut(string(out), "\n"); ok {
			result.Converter.Version = strings.TrimSpace(line)
		}
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get pandoc version: %v", err))
	}
}

// checkGenerator verifies the documentation generator command resolves.
func checkGenerator(cfg *config.Config, result *doctorResult) {
	if len(cfg.Generator.Command) == 0 {
		result.Errors = append(result.Errors, "generator.command is not configured")
		return
	}

	result.Generator.Command = strings.Join(cfg.Generator.Command, " ")

	name := cfg.Generator.Command[0]
	if strings.ContainsAny(name, "/\\") {
		if _, err := os.Stat(name); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("generator binary not found at %s", name))
			return
		}
		result.Generator.Found = true
		result.Generator.Path = name
		return
	}

	path, err := exec.LookPath(name)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("generator command %q not found on PATH", name))
		return
	}
	result.Generator.Found = true
	result.Generator.Path = path
}

// checkLayout verifies the static documentation fragments exist.
func checkLayout(cfg *config.Config, result *doctorResult) {
	checks := []struct {
		name  string
		path  string
		found *bool
	}{
		{"themes document", cfg.Docs.Themes, &result.Layout.Themes},
		{"preface fragment", cfg.Docs.Preface, &result.Layout.Preface},
		{"postface fragment", cfg.Docs.Postface, &result.Layout.Postface},
	}
	for _, c := range checks {
		if info, err := os.Stat(c.path); err == nil && !info.IsDir() {
			*c.found = true
			continue
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s not found at %s (run from the project root?)", c.name, c.path))
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "manstitch-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "manstitch doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Converter")
	if r.Converter.Found {
		if r.Converter.Engine == pipeline.EngineBuiltin {
			fmt.Fprintln(w, "  [OK] Engine: builtin (go-md2man, in-process)")
		} else {
			fmt.Fprintf(w, "  [OK] Found pandoc at %s\n", r.Converter.Path)
			if r.Converter.Version != "" {
				fmt.Fprintf(w, "  [OK] Version: %s\n", r.Converter.Version)
			}
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Generator")
	if r.Generator.Found {
		fmt.Fprintf(w, "  [OK] %s (%s)\n", r.Generator.Command, r.Generator.Path)
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Layout")
	printCheck(w, "Themes document", r.Layout.Themes)
	printCheck(w, "Preface fragment", r.Layout.Preface)
	printCheck(w, "Postface fragment", r.Layout.Postface)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	printCheck(w, "Temp directory writable", r.System.TempWritable)
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to assemble")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printCheck prints one [OK]/[WARN] line.
func printCheck(w io.Writer, label string, ok bool) {
	if ok {
		fmt.Fprintf(w, "  [OK] %s\n", label)
	} else {
		fmt.Fprintf(w, "  [WARN] %s\n", label)
	}
}
