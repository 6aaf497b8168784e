package prj

import (
	"fmt"
	"strings"
)

// Kind identifies a PRJ record type.
type Kind int

// Record kinds
const (
	KindZone Kind = iota + 1
	KindSpecies
	KindAhs
	KindPath
	KindRunControl
	KindLevel
	KindDaySchedule
	KindWeekSchedule
	KindWindProfile
	KindCdvDat
)

var kindNames = map[Kind]string{
	KindZone:         "zone",
	KindSpecies:      "species",
	KindAhs:          "ahs",
	KindPath:         "path",
	KindRunControl:   "runcontrol",
	KindLevel:        "level",
	KindDaySchedule:  "dayschedule",
	KindWeekSchedule: "weekschedule",
	KindWindProfile:  "windprofile",
	KindCdvDat:       "cdvdat",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every record kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindZone, KindSpecies, KindAhs, KindPath, KindRunControl,
		KindLevel, KindDaySchedule, KindWeekSchedule, KindWindProfile, KindCdvDat,
	}
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Record is implemented by every PRJ record codec.
type Record interface {
	Kind() Kind
	// Number is the record's index within its section.
	Number() int
	// Read consumes the record from r, aborting on malformed float text.
	Read(r *Reader) error
	// ReadWith consumes the record from r under opts.
	ReadWith(r *Reader, opts DecodeOptions) error
	// Write returns the record's PRJ text, newline terminated. Use
	// Validate first when the record was built in code.
	Write() string

	shape() shape
}

// New returns a zero-valued record of the given kind.
func New(k Kind) (Record, error) {
	switch k {
	case KindZone:
		return &Zone{}, nil
	case KindSpecies:
		return &Species{}, nil
	case KindAhs:
		return &Ahs{}, nil
	case KindPath:
		return &AirflowPath{}, nil
	case KindRunControl:
		return &RunControl{}, nil
	case KindLevel:
		return &Level{}, nil
	case KindDaySchedule:
		return &DaySchedule{}, nil
	case KindWeekSchedule:
		return &WeekSchedule{}, nil
	case KindWindProfile:
		return &WindPressureProfile{}, nil
	case KindCdvDat:
		return &CdvDat{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
}

// Decode reads a single record of kind k from text. Anything but blank and
// comment lines after the record is an error.
func Decode(k Kind, text string, opts DecodeOptions) (Record, error) {
	rec, err := New(k)
	if err != nil {
		return nil, err
	}
	r := NewStringReader(text)
	if err := rec.ReadWith(r, opts); err != nil {
		return nil, err
	}
	end, err := r.AtEnd()
	if err != nil {
		return nil, err
	}
	if !end {
		return nil, fmt.Errorf("%s: %w at line %d", k, ErrTrailingInput, r.Line())
	}
	return rec, nil
}

// Validate reports the first string field whose value Write cannot emit in
// readable form: a token that is empty, starts with '!' or holds whitespace,
// or a free text line holding a line break.
func Validate(rec Record) error {
	var e encoder
	e.run(rec.shape())
	if e.badField != "" {
		return fmt.Errorf("%s %d %s: %w: %q", rec.Kind(), rec.Number(), e.badField, ErrInvalidToken, e.badText)
	}
	return nil
}
