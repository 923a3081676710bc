package geom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const zoneDMS = `204856N 1064328E
205547N 1062738E

203918Q 1062947E
203259N 1064318E
`

func TestReadTolerantSkipsMalformed(t *testing.T) {
	res, err := Read(strings.NewReader(zoneDMS), FormatDMS, Tolerant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Lines != 4 {
		t.Errorf("Expected 4 non-blank lines, got %d", res.Lines)
	}
	if len(res.Points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(res.Points))
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("Expected 1 skipped line, got %d", len(res.Skipped))
	}
	if res.Skipped[0].Line != 4 {
		t.Errorf("Expected skipped line 4, got %d", res.Skipped[0].Line)
	}

	// points around the bad line are intact and in order
	first, _ := ParseDMSLine("204856N 1064328E")
	second, _ := ParseDMSLine("205547N 1062738E")
	last, _ := ParseDMSLine("203259N 1064318E")
	want := BoundaryPath{first, second, last}
	for i := range want {
		if res.Points[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], res.Points[i])
		}
	}
}

func TestReadStrictStopsAtFirstError(t *testing.T) {
	_, err := Read(strings.NewReader(zoneDMS), FormatDMS, Strict)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FormatError, got %v", err)
	}
	if fe.Line != 4 {
		t.Errorf("Expected line 4, got %d", fe.Line)
	}
}

func TestReadOverlongLine(t *testing.T) {
	in := "20.5,106.5\n" + strings.Repeat("x", 70000) + "\n21.0,106.0\n"

	res, err := Read(strings.NewReader(in), FormatDecimal, Tolerant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 2 {
		t.Errorf("Expected 2 points, got %d", len(res.Points))
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Line != 2 {
		t.Errorf("Expected line 2 skipped, got %v", res.Skipped)
	}

	_, err = Read(strings.NewReader(in), FormatDecimal, Strict)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *FormatError, got %v", err)
	}
	if fe.Line != 2 {
		t.Errorf("Expected line 2, got %d", fe.Line)
	}
}

func TestReadLastLineWithoutNewline(t *testing.T) {
	res, err := Read(strings.NewReader("20.5,106.5\r\n21.0,106.0"), FormatDecimal, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 2 {
		t.Errorf("Expected 2 points, got %d", len(res.Points))
	}
}

func TestReadDecimal(t *testing.T) {
	in := "23.3925,105.3233\n22.8,106.7  \n\n10.4,107.1\n"
	res, err := Read(strings.NewReader(in), FormatDecimal, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BoundaryPath{{23.3925, 105.3233}, {22.8, 106.7}, {10.4, 107.1}}
	if len(res.Points) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(res.Points))
	}
	for i := range want {
		if res.Points[i] != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], res.Points[i])
		}
	}
}

func TestReadAuto(t *testing.T) {
	in := "20.5,106.5\n203000N 1063000E\n"
	res, err := Read(strings.NewReader(in), FormatAuto, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 2 || res.Points[0] != res.Points[1] {
		t.Errorf("Expected two equal points, got %+v", res.Points)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zone.txt")
	if err := os.WriteFile(path, []byte(zoneDMS), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := LoadFile(path, FormatDMS, Tolerant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 3 {
		t.Errorf("Expected 3 points, got %d", len(res.Points))
	}

	_, err = LoadFile(path, FormatDMS, Strict)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Errorf("Expected wrapped *FormatError, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	_, err := LoadFile(path, FormatDecimal, Tolerant)
	var me *FileMissingError
	if !errors.As(err, &me) {
		t.Fatalf("Expected *FileMissingError, got %v", err)
	}
	if me.Path != path {
		t.Errorf("Expected path %s, got %s", path, me.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected error to wrap os.ErrNotExist")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatDecimal, false},
		{"decimal", FormatDecimal, false},
		{"DMS", FormatDMS, false},
		{" auto ", FormatAuto, false},
		{"wkt", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
