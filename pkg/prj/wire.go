package prj

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeOptions controls how a record treats float tokens that fail to parse.
type DecodeOptions struct {
	// Lenient keeps the field's previous value and continues, matching
	// legacy readers. Elements of counted collections are decoded into a
	// fresh slice, so a malformed element is left at the default "0.0".
	// The default aborts the record.
	Lenient bool
	// OnMalformed is called for every tolerated field when Lenient is set.
	OnMalformed func(*FieldError)
}

// field is one element of a record's wire shape. The same value drives both
// directions, so read and write agree on order and conditional presence.
type field interface {
	decode(d *decoder) error
	encode(e *encoder)
}

type shape []field

type decoder struct {
	r    *Reader
	kind Kind
	opts DecodeOptions
}

func (d *decoder) run(s shape) error {
	for _, f := range s {
		if err := f.decode(d); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) fail(name string, err error) error {
	return fmt.Errorf("%s %s: %w", d.kind, name, err)
}

func (d *decoder) malformed(name, text string) error {
	fe := &FieldError{Record: d.kind, Field: name, Text: text, Line: d.r.Line(), Err: ErrMalformedNumericField}
	if !d.opts.Lenient {
		return fe
	}
	if d.opts.OnMalformed != nil {
		d.opts.OnMalformed(fe)
	}
	return nil
}

// maxPrealloc caps capacity reserved from a count read off the input.
const maxPrealloc = 1024

type encoder struct {
	b    strings.Builder
	line []string

	// first value that will not read back
	badField string
	badText  string
}

func (e *encoder) invalid(name, text string) {
	if e.badField == "" {
		e.badField, e.badText = name, text
	}
}

func (e *encoder) token(s string) {
	e.line = append(e.line, s)
}

func (e *encoder) flush() {
	if len(e.line) == 0 {
		return
	}
	e.b.WriteString(strings.Join(e.line, " "))
	e.b.WriteByte('\n')
	e.line = e.line[:0]
}

func (e *encoder) run(s shape) {
	for _, f := range s {
		f.encode(e)
	}
}

func decodeShape(r *Reader, kind Kind, opts DecodeOptions, s shape) error {
	d := &decoder{r: r, kind: kind, opts: opts}
	return d.run(s)
}

func encodeShape(s shape) string {
	var e encoder
	e.run(s)
	e.flush()
	return e.b.String()
}

type intField struct {
	name string
	p    *int
}

func (f intField) decode(d *decoder) error {
	v, err := d.r.ReadInt()
	if err != nil {
		return d.fail(f.name, err)
	}
	*f.p = v
	return nil
}

func (f intField) encode(e *encoder) { e.token(strconv.Itoa(*f.p)) }

type uintField struct {
	name string
	p    *uint32
}

func (f uintField) decode(d *decoder) error {
	v, err := d.r.ReadUint()
	if err != nil {
		return d.fail(f.name, err)
	}
	*f.p = v
	return nil
}

func (f uintField) encode(e *encoder) { e.token(strconv.FormatUint(uint64(*f.p), 10)) }

// tokenField is a single whitespace-free string such as a name.
type tokenField struct {
	name string
	p    *string
}

func (f tokenField) decode(d *decoder) error {
	v, err := d.r.ReadString()
	if err != nil {
		return d.fail(f.name, err)
	}
	*f.p = v
	return nil
}

func (f tokenField) encode(e *encoder) {
	if !validToken(*f.p) {
		e.invalid(f.name, *f.p)
	}
	e.token(*f.p)
}

// validToken reports whether s survives a write and read as one token. A
// leading '!' is refused because the token may start a line.
func validToken(s string) bool {
	return s != "" && !strings.HasPrefix(s, "!") && !strings.ContainsAny(s, " \t\v\f\r\n")
}

// lineField is free text occupying a line of its own.
type lineField struct {
	name string
	p    *string
}

func (f lineField) decode(d *decoder) error {
	v, err := d.r.ReadLine()
	if err != nil {
		return d.fail(f.name, err)
	}
	*f.p = v
	return nil
}

func (f lineField) encode(e *encoder) {
	if strings.ContainsAny(*f.p, "\r\n") {
		e.invalid(f.name, *f.p)
	}
	e.flush()
	e.b.WriteString(*f.p)
	e.b.WriteByte('\n')
}

type numField struct {
	name string
	p    *FloatField
}

func (f numField) decode(d *decoder) error {
	tok, err := d.r.ReadNumber()
	if err != nil {
		return d.fail(f.name, err)
	}
	if !f.p.SetString(tok) {
		return d.malformed(f.name, tok)
	}
	return nil
}

func (f numField) encode(e *encoder) { e.token(f.p.String()) }

// intArray reads and writes exactly len(p) integers.
type intArray struct {
	name string
	p    []int
}

func (f intArray) decode(d *decoder) error {
	for i := range f.p {
		v, err := d.r.ReadInt()
		if err != nil {
			return d.fail(fmt.Sprintf("%s[%d]", f.name, i), err)
		}
		f.p[i] = v
	}
	return nil
}

func (f intArray) encode(e *encoder) {
	for _, v := range f.p {
		e.token(strconv.Itoa(v))
	}
}

type lineBreak struct{}

func (lineBreak) decode(*decoder) error { return nil }
func (lineBreak) encode(e *encoder)     { e.flush() }

type whenField struct {
	pred  func() bool
	group shape
}

func when(pred func() bool, group ...field) field {
	return whenField{pred: pred, group: group}
}

func (f whenField) decode(d *decoder) error {
	if !f.pred() {
		return nil
	}
	return d.run(f.group)
}

func (f whenField) encode(e *encoder) {
	if f.pred() {
		e.run(f.group)
	}
}

// eachField is a counted sub-collection. The count is read by an earlier
// field into *count; on write the caller derives *count from the slice.
type eachField[T any] struct {
	name  string
	count *int
	items *[]T
	elem  func(*T) shape
}

func each[T any](name string, count *int, items *[]T, elem func(*T) shape) field {
	return eachField[T]{name: name, count: count, items: items, elem: elem}
}

func (f eachField[T]) decode(d *decoder) error {
	n := *f.count
	if n < 0 {
		return &FieldError{Record: d.kind, Field: f.name, Text: strconv.Itoa(n), Line: d.r.Line(), Err: ErrBadCount}
	}
	var items []T
	if n > 0 {
		items = make([]T, 0, min(n, maxPrealloc))
	}
	for i := 0; i < n; i++ {
		var item T
		if err := d.run(f.elem(&item)); err != nil {
			return err
		}
		items = append(items, item)
	}
	*f.items = items
	return nil
}

func (f eachField[T]) encode(e *encoder) {
	for i := range *f.items {
		e.run(f.elem(&(*f.items)[i]))
	}
}
