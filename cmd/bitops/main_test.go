package main

import (
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

func assertOutput(t *testing.T, want, got string) {
	t.Helper()
	if want != got {
		edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
		t.Errorf("output mismatch:\n%s", fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits)))
	}
}
