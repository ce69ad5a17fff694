package main

import (
	"bytes"
	"strings"
	"testing"

	"mandelview/escape"
)

func TestReportInside(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, escape.Point{})
	out := buf.String()
	for _, want := range []string{"escaped  = false", "count    = 1000", "#000000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "smoothed") {
		t.Fatalf("report shows smoothing for an inside point:\n%s", out)
	}
}

func TestReportEscaped(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, escape.Point{X: 3, Y: 3})
	out := buf.String()
	for _, want := range []string{"escaped  = true", "count    = 0", "|z|^2    = 18", "smoothed = "} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
