package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

type Format int

const (
	PSONFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type info struct {
	name     string
	suffixes []string
}

var infos = map[Format]info{
	PSONFormat: {name: "pson", suffixes: []string{".pson"}},
	JSONFormat: {name: "json", suffixes: []string{".json"}},
	YAMLFormat: {name: "yaml", suffixes: []string{".yaml", ".yml"}},
}

// Formats lists the formats in preference order.
func Formats() []Format {
	return []Format{PSONFormat, JSONFormat, YAMLFormat}
}

// ParseFormat returns the format with name v, ignoring case.
func ParseFormat(v string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(infos[f].name, v) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	i, ok := infos[f]
	if !ok {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return i.name
}

func (f Format) MarshalText() ([]byte, error) {
	i, ok := infos[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(i.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsPSON() bool { return f == PSONFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }

// FromPath guesses the format of a file from its extension. Unknown
// extensions give PSONFormat and false.
func FromPath(name string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, f := range Formats() {
		if slices.Contains(infos[f].suffixes, ext) {
			return f, true
		}
	}
	return PSONFormat, false
}
