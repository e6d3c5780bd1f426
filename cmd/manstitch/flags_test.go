package main

import "testing"

func TestParseAssembleFlags(t *testing.T) {
	flags, positional, err := parseAssembleFlags([]string{
		"man/mybar.1",
		"--source", "src",
		"--engine", "builtin",
		"--generator", "cargo run -p docgen --",
		"--base-header-level", "3",
		"--keep-intermediates",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseAssembleFlags: %v", err)
	}

	if len(positional) != 1 || positional[0] != "man/mybar.1" {
		t.Errorf("positional = %v", positional)
	}
	if flags.paths.source != "src" {
		t.Errorf("source = %q", flags.paths.source)
	}
	if flags.converter.engine != "builtin" {
		t.Errorf("engine = %q", flags.converter.engine)
	}
	if flags.generator.command != "cargo run -p docgen --" {
		t.Errorf("generator = %q", flags.generator.command)
	}
	if flags.converter.baseHeaderLevel != 3 {
		t.Errorf("baseHeaderLevel = %d", flags.converter.baseHeaderLevel)
	}
	if !flags.keepIntermediates {
		t.Error("keepIntermediates not set")
	}
	if !flags.common.verbose {
		t.Error("verbose not set")
	}
}

func TestParseAssembleFlags_NoArgs(t *testing.T) {
	flags, positional, err := parseAssembleFlags(nil)
	if err != nil {
		t.Fatalf("parseAssembleFlags: %v", err)
	}
	if len(positional) != 0 {
		t.Errorf("positional = %v, want none", positional)
	}
	if flags.common.quiet || flags.common.verbose || flags.keepIntermediates {
		t.Error("boolean flags should default to false")
	}
}

func TestParseAssembleFlags_UnknownFlag(t *testing.T) {
	if _, _, err := parseAssembleFlags([]string{"--bogus"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}
