package pipeline

import (
	"strings"
	"testing"
)

func TestPreviewRenderer(t *testing.T) {
	r := NewPreviewRenderer()

	md := "## cpu\n\n| key | default |\n|---|---|\n| interval | 5 |\n\n```toml\nblock = \"cpu\"\n```\n"
	got, err := r.Render("statusbar.1", md)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	checks := []string{
		"<!DOCTYPE html>",
		"<title>statusbar.1</title>",
		"<table>", // GFM tables enabled
		"cpu",
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestPreviewRenderer_HeadingIDs(t *testing.T) {
	r := NewPreviewRenderer()

	got, err := r.Render("doc", "## Battery Block\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, `id="battery-block"`) {
		t.Errorf("auto heading IDs missing:\n%s", got)
	}
}
