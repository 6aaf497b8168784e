package prj

// PressureCoefficientPoint is a wind pressure coefficient at an azimuth.
type PressureCoefficientPoint struct {
	Azm  FloatField
	Coef FloatField
}

func (p *PressureCoefficientPoint) shape() shape {
	return shape{
		numField{"azm", &p.Azm},
		numField{"coef", &p.Coef},
		lineBreak{},
	}
}

// WindPressureProfile maps wind direction to a pressure coefficient.
type WindPressureProfile struct {
	Nr     int
	Type   int
	Name   string
	Desc   string
	Coeffs []PressureCoefficientPoint
}

func (w *WindPressureProfile) shape() shape {
	npts := len(w.Coeffs)
	return shape{
		intField{"nr", &w.Nr},
		intField{"npts", &npts},
		intField{"type", &w.Type},
		tokenField{"name", &w.Name},
		lineField{"desc", &w.Desc},
		each("coeffs", &npts, &w.Coeffs, (*PressureCoefficientPoint).shape),
	}
}

// Kind implements Record.
func (w *WindPressureProfile) Kind() Kind { return KindWindProfile }

// Number implements Record.
func (w *WindPressureProfile) Number() int { return w.Nr }

// Read implements Record.
func (w *WindPressureProfile) Read(r *Reader) error { return w.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (w *WindPressureProfile) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindWindProfile, opts, w.shape())
}

// Write implements Record.
func (w *WindPressureProfile) Write() string { return encodeShape(w.shape()) }
