package prj

// Icon is a SketchPad icon placed on a level.
type Icon struct {
	Icon int
	Col  int
	Row  int
	Nr   int
}

func (i *Icon) shape() shape {
	return shape{
		intField{"icon", &i.Icon},
		intField{"col", &i.Col},
		intField{"row", &i.Row},
		intField{"nr", &i.Nr},
		lineBreak{},
	}
}

// Write returns the icon's PRJ line.
func (i *Icon) Write() string { return encodeShape(i.shape()) }

// Level is a building floor with the icons drawn on it.
type Level struct {
	Nr    int
	Refht FloatField
	Delht FloatField
	URfht int
	UDlht int
	Name  string
	Icons []Icon
}

func (l *Level) shape() shape {
	nicon := len(l.Icons)
	return shape{
		intField{"nr", &l.Nr},
		numField{"refht", &l.Refht},
		numField{"delht", &l.Delht},
		intField{"nicon", &nicon},
		intField{"u_rfht", &l.URfht},
		intField{"u_dlht", &l.UDlht},
		tokenField{"name", &l.Name},
		lineBreak{},
		each("icons", &nicon, &l.Icons, (*Icon).shape),
	}
}

// Kind implements Record.
func (l *Level) Kind() Kind { return KindLevel }

// Number implements Record.
func (l *Level) Number() int { return l.Nr }

// Read implements Record.
func (l *Level) Read(r *Reader) error { return l.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (l *Level) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindLevel, opts, l.shape())
}

// Write implements Record.
func (l *Level) Write() string { return encodeShape(l.shape()) }
