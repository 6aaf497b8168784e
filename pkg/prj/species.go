package prj

// Species is a contaminant definition. Cp is carried for the file format but
// not used by the simulation engine.
type Species struct {
	Nr     int
	Sflag  int // simulated
	Ntflag int // non-trace
	Molwt  FloatField
	Mdiam  FloatField
	Edens  FloatField
	Decay  FloatField
	Dm     FloatField
	Ccdef  FloatField
	Cp     FloatField
	Ucc    int
	Umd    int
	Ued    int
	Udm    int
	Ucp    int
	Name   string
	Desc   string
}

func (s *Species) shape() shape {
	return shape{
		intField{"nr", &s.Nr},
		intField{"sflag", &s.Sflag},
		intField{"ntflag", &s.Ntflag},
		numField{"molwt", &s.Molwt},
		numField{"mdiam", &s.Mdiam},
		numField{"edens", &s.Edens},
		numField{"decay", &s.Decay},
		numField{"Dm", &s.Dm},
		numField{"ccdef", &s.Ccdef},
		numField{"Cp", &s.Cp},
		intField{"ucc", &s.Ucc},
		intField{"umd", &s.Umd},
		intField{"ued", &s.Ued},
		intField{"udm", &s.Udm},
		intField{"ucp", &s.Ucp},
		tokenField{"name", &s.Name},
		lineField{"desc", &s.Desc},
	}
}

// Kind implements Record.
func (s *Species) Kind() Kind { return KindSpecies }

// Number implements Record.
func (s *Species) Number() int { return s.Nr }

// Read implements Record.
func (s *Species) Read(r *Reader) error { return s.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (s *Species) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindSpecies, opts, s.shape())
}

// Write implements Record.
func (s *Species) Write() string { return encodeShape(s.shape()) }

// Simulated reports whether the species is simulated.
func (s *Species) Simulated() bool { return s.Sflag != 0 }

// Trace reports whether the species is a trace contaminant.
func (s *Species) Trace() bool { return s.Ntflag == 0 }
