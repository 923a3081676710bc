package geom

import (
	"fmt"
	"math"
)

// Axis selects the latitude or longitude flavour of a DMS field.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

func (a Axis) String() string {
	if a == Longitude {
		return "longitude"
	}
	return "latitude"
}

// degreeDigits is the fixed width of the degrees field.
func (a Axis) degreeDigits() int {
	if a == Longitude {
		return 3
	}
	return 2
}

// hemispheres returns the positive and negative hemisphere letters.
func (a Axis) hemispheres() (pos, neg byte) {
	if a == Longitude {
		return 'E', 'W'
	}
	return 'N', 'S'
}

// Width is the total encoded length: degrees, minutes, seconds, hemisphere.
func (a Axis) Width() int { return a.degreeDigits() + 5 }

// DMS is a degrees/minutes/seconds value with its hemisphere letter.
type DMS struct {
	Deg  int
	Min  int
	Sec  int
	Hemi byte
}

// DMSToDecimal converts degrees, minutes and seconds to decimal degrees.
// South and West are negative.
func DMSToDecimal(degrees, minutes, seconds int, hemisphere byte) (float64, error) {
	in := fmt.Sprintf("%d %d %d %c", degrees, minutes, seconds, hemisphere)
	switch {
	case degrees < 0:
		return 0, &FormatError{Input: in, Reason: "negative degrees"}
	case minutes < 0 || minutes >= 60:
		return 0, &FormatError{Input: in, Reason: fmt.Sprintf("minutes %d out of range [0,60)", minutes)}
	case seconds < 0 || seconds >= 60:
		return 0, &FormatError{Input: in, Reason: fmt.Sprintf("seconds %d out of range [0,60)", seconds)}
	}
	v := float64(degrees) + float64(minutes)/60 + float64(seconds)/3600
	switch hemisphere {
	case 'N', 'E':
		return v, nil
	case 'S', 'W':
		return -v, nil
	}
	return 0, &FormatError{Input: in, Reason: fmt.Sprintf("unknown hemisphere %q", hemisphere)}
}

// Decimal returns the signed decimal-degree value of d.
func (d DMS) Decimal() (float64, error) {
	return DMSToDecimal(d.Deg, d.Min, d.Sec, d.Hemi)
}

// Format encodes d as the fixed-width string for the axis, e.g. "204856N".
func (d DMS) Format(a Axis) string {
	return fmt.Sprintf("%0*d%02d%02d%c", a.degreeDigits(), d.Deg, d.Min, d.Sec, d.Hemi)
}

// ParseDMS decodes a fixed-width DMS token such as "204856N" or "1064328E".
func ParseDMS(s string, a Axis) (DMS, error) {
	if len(s) != a.Width() {
		return DMS{}, &FormatError{Input: s, Reason: fmt.Sprintf("%s needs %d characters, got %d", a, a.Width(), len(s))}
	}
	n := a.degreeDigits()
	fields := [3]string{s[:n], s[n : n+2], s[n+2 : n+4]}
	var vals [3]int
	for i, f := range fields {
		v, ok := digits(f)
		if !ok {
			return DMS{}, &FormatError{Input: s, Reason: fmt.Sprintf("field %q is not numeric", f)}
		}
		vals[i] = v
	}
	hemi := s[n+4]
	if pos, neg := a.hemispheres(); hemi != pos && hemi != neg {
		return DMS{}, &FormatError{Input: s, Reason: fmt.Sprintf("hemisphere %q is not %c or %c", hemi, pos, neg)}
	}
	d := DMS{Deg: vals[0], Min: vals[1], Sec: vals[2], Hemi: hemi}
	if _, err := d.Decimal(); err != nil {
		fe := err.(*FormatError)
		fe.Input = s
		return DMS{}, fe
	}
	return d, nil
}

// DecimalToDMS re-encodes a decimal value to the nearest whole second.
func DecimalToDMS(v float64, a Axis) DMS {
	pos, neg := a.hemispheres()
	hemi := pos
	if v < 0 {
		hemi = neg
		v = -v
	}
	total := int(math.Round(v * 3600))
	return DMS{Deg: total / 3600, Min: total % 3600 / 60, Sec: total % 60, Hemi: hemi}
}

// ParseDMSPair decodes a latitude and a longitude token into a point.
func ParseDMSPair(lat, lon string) (GeoPoint, error) {
	la, err := ParseDMS(lat, Latitude)
	if err != nil {
		return GeoPoint{}, err
	}
	lo, err := ParseDMS(lon, Longitude)
	if err != nil {
		return GeoPoint{}, err
	}
	// both values were range checked by ParseDMS
	p := GeoPoint{}
	p.Lat, _ = la.Decimal()
	p.Lon, _ = lo.Decimal()
	if !p.Valid() {
		return GeoPoint{}, &FormatError{Input: lat + " " + lon, Reason: "coordinate out of range"}
	}
	return p, nil
}

// digits parses an all-ASCII-digit string; signs and spaces are rejected.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
