package ui

import (
	"bytes"
	"strings"
	"testing"

	"kittyhaven/internal/engine"
)

func TestToasterWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	Toaster{W: &buf}.Notify("Bought Dried Fish x1", engine.KindSuccess)

	out := buf.String()
	if !strings.Contains(out, "Bought Dried Fish x1") {
		t.Fatalf("output=%q, want message", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("output=%q, want a single line", out)
	}
}

func TestMeterBounds(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{value: -5, want: "[----]"},
		{value: 50, want: "[##--]"},
		{value: 100, want: "[####]"},
		{value: 250, want: "[####]"},
	}
	for _, tc := range cases {
		if got := Meter(tc.value, 100, 4); got != tc.want {
			t.Fatalf("Meter(%v)=%q, want %q", tc.value, got, tc.want)
		}
	}
}
