package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Format selects the line syntax of a coordinate file.
type Format int

const (
	FormatDecimal Format = iota // "<lat>,<lon>"
	FormatDMS                   // "<latDMS> <lonDMS>"
	FormatAuto                  // decided per line
)

func (f Format) String() string {
	switch f {
	case FormatDMS:
		return "dms"
	case FormatAuto:
		return "auto"
	}
	return "decimal"
}

// ParseFormat maps a config/flag value to a Format. Empty means decimal.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decimal":
		return FormatDecimal, nil
	case "dms":
		return FormatDMS, nil
	case "auto":
		return FormatAuto, nil
	}
	return 0, fmt.Errorf("unknown coordinate format %q", s)
}

func (f Format) parser() func(string) (GeoPoint, error) {
	switch f {
	case FormatDMS:
		return ParseDMSLine
	case FormatAuto:
		return ParseLine
	}
	return ParseDecimalLine
}

// Mode controls what a batch load does with a malformed line.
type Mode int

const (
	Tolerant Mode = iota // skip and count
	Strict               // abort on the first error
)

// LoadResult is the outcome of a batch load.
type LoadResult struct {
	Points  BoundaryPath
	Lines   int            // non-blank lines seen
	Skipped []*FormatError // tolerant mode only
}

// MaxLineLen bounds a coordinate line. Longer lines are malformed.
const MaxLineLen = 4096

// Read parses one point per line. Blank lines are ignored in both modes.
func Read(r io.Reader, f Format, mode Mode) (LoadResult, error) {
	parse := f.parser()
	var res LoadResult
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return LoadResult{}, rerr
		}
		if rerr == io.EOF && line == "" {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			res.Lines++
			if err := res.add(parse, line, n); err != nil {
				var fe *FormatError
				if !errors.As(err, &fe) || mode == Strict {
					return LoadResult{}, err
				}
				log.Debug().Err(fe).Int("line", n).Str("format", f.String()).Msg("Skipping malformed coordinate line")
				res.Skipped = append(res.Skipped, fe)
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	return res, nil
}

// add parses one non-blank line into res.Points. Format errors carry the line number.
func (res *LoadResult) add(parse func(string) (GeoPoint, error), line string, n int) error {
	if len(line) > MaxLineLen {
		return &FormatError{Line: n, Input: line[:32] + "...", Reason: fmt.Sprintf("line longer than %d bytes", MaxLineLen)}
	}
	p, err := parse(line)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Line = n
		}
		return err
	}
	res.Points = append(res.Points, p)
	return nil
}

// CheckExists returns a *FileMissingError when path is absent.
func CheckExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileMissingError{Path: path, Err: err}
		}
		return err
	}
	return nil
}

// LoadFile checks that path exists and then reads it with Read.
func LoadFile(path string, f Format, mode Mode) (LoadResult, error) {
	if err := CheckExists(path); err != nil {
		return LoadResult{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return LoadResult{}, err
	}
	defer fh.Close()
	res, err := Read(fh, f, mode)
	if err != nil {
		return LoadResult{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().
		Str("path", path).
		Str("format", f.String()).
		Int("lines", res.Lines).
		Int("points", len(res.Points)).
		Int("skipped", len(res.Skipped)).
		Msg("Coordinate file loaded")
	return res, nil
}
