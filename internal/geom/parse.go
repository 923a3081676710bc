package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDecimalLine parses "<lat>,<lon>" in decimal degrees.
func ParseDecimalLine(line string) (GeoPoint, error) {
	s := strings.TrimSpace(line)
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return GeoPoint{}, &FormatError{Input: s, Reason: fmt.Sprintf("want 2 comma-separated values, got %d", len(parts))}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, &FormatError{Input: s, Reason: "latitude is not a number", Err: err}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, &FormatError{Input: s, Reason: "longitude is not a number", Err: err}
	}
	p := GeoPoint{Lat: lat, Lon: lon}
	if !p.Valid() {
		return GeoPoint{}, &FormatError{Input: s, Reason: "coordinate out of range"}
	}
	return p, nil
}

// ParseDMSLine parses "<latDMS> <lonDMS>", e.g. "204856N 1064328E".
func ParseDMSLine(line string) (GeoPoint, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return GeoPoint{}, &FormatError{Input: strings.TrimSpace(line), Reason: fmt.Sprintf("want 2 DMS tokens, got %d", len(fields))}
	}
	return ParseDMSPair(fields[0], fields[1])
}

// ParseLine picks the decimal parser when the line holds a comma, DMS otherwise.
func ParseLine(line string) (GeoPoint, error) {
	if strings.Contains(line, ",") {
		return ParseDecimalLine(line)
	}
	return ParseDMSLine(line)
}
