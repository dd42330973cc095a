package main

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"legacy", []string{"legacy"}},
		{"legacy,fresh", []string{"legacy", "fresh"}},
		{" legacy , fresh ", []string{"legacy", "fresh"}},
		{"legacy,,fresh,", []string{"legacy", "fresh"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	t.Run("check defaults", func(t *testing.T) {
		fs, flags := setupCheckFlags()
		if err := fs.Parse(nil); err != nil {
			t.Fatalf("parse: %v", err)
		}
		if flags.method != "GET" {
			t.Errorf("default method = %q, want GET", flags.method)
		}
		if flags.asJSON {
			t.Error("json should default to false")
		}
	})

	t.Run("inspect flags", func(t *testing.T) {
		fs, flags := setupInspectFlags()
		if err := fs.Parse([]string{"--path", "/items", "--query", "legacy,fresh", "spec.yaml"}); err != nil {
			t.Fatalf("parse: %v", err)
		}
		if flags.path != "/items" {
			t.Errorf("path = %q, want /items", flags.path)
		}
		if fs.NArg() != 1 || fs.Arg(0) != "spec.yaml" {
			t.Errorf("positional args = %v", fs.Args())
		}
	})
}
