package prj

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionEnd terminates every counted PRJ section.
const SectionEnd = "-999"

// ReadSection reads a record count, that many records of kind k and the
// section terminator.
func ReadSection(r *Reader, k Kind, opts DecodeOptions) ([]Record, error) {
	if k == KindRunControl {
		return nil, fmt.Errorf("%w: %s", ErrNotSectioned, k)
	}
	if _, err := New(k); err != nil {
		return nil, err
	}
	n, err := r.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("%s section count: %w", k, err)
	}
	if n < 0 {
		return nil, &FieldError{Record: k, Field: "count", Text: strconv.Itoa(n), Line: r.Line(), Err: ErrBadCount}
	}
	records := make([]Record, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		rec, _ := New(k)
		if err := rec.ReadWith(r, opts); err != nil {
			return records, fmt.Errorf("%s record %d of %d: %w", k, i+1, n, err)
		}
		records = append(records, rec)
	}
	tok, err := r.ReadString()
	if err != nil {
		return records, fmt.Errorf("%s section: %w", k, err)
	}
	if tok != SectionEnd {
		return records, &FieldError{Record: k, Field: "terminator", Text: tok, Line: r.Line(), Err: ErrMissingTerminator}
	}
	return records, nil
}

// WriteSection writes records as a counted section. The records should all
// share one kind.
func WriteSection(records []Record) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(records)))
	b.WriteByte('\n')
	for _, rec := range records {
		b.WriteString(rec.Write())
	}
	b.WriteString(SectionEnd)
	b.WriteByte('\n')
	return b.String()
}
