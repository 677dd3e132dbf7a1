package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/milk9111/spacezoom/procgen"
)

func TestParseZooms(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{in: "50", want: []float64{50}},
		{in: " 10, -20 ,,75.5", want: []float64{10, -20, 75.5}},
		{in: "", wantErr: true},
		{in: "ten", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseZooms(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestPreviewListsEveryCategory(t *testing.T) {
	set := procgen.NewSet(procgen.DefaultRules(), rand.New(rand.NewSource(1)))
	var buf bytes.Buffer
	preview(&buf, set, 60, true)
	out := buf.String()
	for _, c := range procgen.Categories {
		if !strings.Contains(out, string(c)) {
			t.Fatalf("expected %s in preview:\n%s", c, out)
		}
	}
	if !strings.Contains(out, "galaxy     bucket 3   count 11") {
		t.Fatalf("expected 11 galaxies at zoom 60:\n%s", out)
	}
}
