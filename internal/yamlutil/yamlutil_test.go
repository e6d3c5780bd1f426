package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	var s sample
	if err := UnmarshalStrict([]byte("name: cpu\ncount: 2\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict: %v", err)
	}
	if s.Name != "cpu" || s.Count != 2 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &s)
	if err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestUnmarshalStrict_InputValidation(t *testing.T) {
	var s sample

	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: error = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination: error = %v, want ErrNilDestination", err)
	}

	big := []byte(strings.Repeat("a", MaxInputSize+1))
	if err := UnmarshalStrict(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input: error = %v, want ErrInputTooLarge", err)
	}
}
