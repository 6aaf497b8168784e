package prj

import "fmt"

// CdvDat is a control node fed by an externally supplied data series named
// by ValueName. N1 and N2 are SketchPad input node numbers.
type CdvDat struct {
	Nr        int
	DataType  string
	Seqnr     int
	Flags     uint32
	Inreq     int
	N1        int
	N2        int
	Name      string
	Desc      string
	ValueName string

	want string
}

// NewCdvDat returns a CdvDat whose Read rejects any data type other than
// dataType. DataType is preset so Write emits it.
func NewCdvDat(dataType string) *CdvDat {
	return &CdvDat{DataType: dataType, want: dataType}
}

func (c *CdvDat) shape() shape {
	return shape{
		intField{"nr", &c.Nr},
		tokenField{"datatype", &c.DataType},
		intField{"seqnr", &c.Seqnr},
		uintField{"flags", &c.Flags},
		intField{"inreq", &c.Inreq},
		intField{"n1", &c.N1},
		intField{"n2", &c.N2},
		tokenField{"name", &c.Name},
		lineField{"desc", &c.Desc},
		lineField{"valuename", &c.ValueName},
	}
}

// Kind implements Record.
func (c *CdvDat) Kind() Kind { return KindCdvDat }

// Number implements Record.
func (c *CdvDat) Number() int { return c.Nr }

// Read implements Record.
func (c *CdvDat) Read(r *Reader) error { return c.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (c *CdvDat) ReadWith(r *Reader, opts DecodeOptions) error {
	if err := decodeShape(r, KindCdvDat, opts, c.shape()); err != nil {
		return err
	}
	if c.want != "" && c.DataType != c.want {
		return &FieldError{Record: KindCdvDat, Field: "datatype", Text: c.DataType, Line: r.Line(),
			Err: fmt.Errorf("%w: want %q", ErrUnexpectedDataType, c.want)}
	}
	return nil
}

// Write implements Record.
func (c *CdvDat) Write() string { return encodeShape(c.shape()) }
