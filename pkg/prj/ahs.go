package prj

// Ahs links an air-handling system to its zones and paths.
type Ahs struct {
	Nr    int
	ZoneR int // return zone
	ZoneS int // supply zone
	PathR int // recirculation path
	PathS int // outdoor air path
	PathX int // exhaust path
	Name  string
	Desc  string
}

func (a *Ahs) shape() shape {
	return shape{
		intField{"nr", &a.Nr},
		intField{"zone_r", &a.ZoneR},
		intField{"zone_s", &a.ZoneS},
		intField{"path_r", &a.PathR},
		intField{"path_s", &a.PathS},
		intField{"path_x", &a.PathX},
		tokenField{"name", &a.Name},
		lineField{"desc", &a.Desc},
	}
}

// Kind implements Record.
func (a *Ahs) Kind() Kind { return KindAhs }

// Number implements Record.
func (a *Ahs) Number() int { return a.Nr }

// Read implements Record.
func (a *Ahs) Read(r *Reader) error { return a.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (a *Ahs) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindAhs, opts, a.shape())
}

// Write implements Record.
func (a *Ahs) Write() string { return encodeShape(a.shape()) }
