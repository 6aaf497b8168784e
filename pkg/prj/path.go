package prj

// AirflowPath is a flow connection from zone Pzn to zone Pzm. All the P*
// fields are record indices left for the caller to resolve.
type AirflowPath struct {
	Nr    int
	Flags PathFlags
	Pzn   int // zone N
	Pzm   int // zone M
	Pe    int // flow element
	Pf    int // filter
	Pw    int // wind coefficients
	Pa    int // AHS
	Ps    int // schedule
	Pc    int // control node
	Pld   int // level
	X     FloatField
	Y     FloatField
	RelHt FloatField
	Mult  FloatField
	WPset FloatField
	WPmod FloatField
	Wazm  FloatField
	Fahs  FloatField
	Xmax  FloatField
	Xmin  FloatField
	Icon  uint32
	Dir   uint32
	UHt   int
	UXY   int
	UdP   int
	UF    int

	// Cfd enables the CFD sub-record.
	Cfd     int
	CfdName string
	CfdDat  int
	CfdType int
	CfdCvf  int
}

func (p *AirflowPath) shape() shape {
	return shape{
		intField{"nr", &p.Nr},
		uintField{"flags", (*uint32)(&p.Flags)},
		intField{"pzn", &p.Pzn},
		intField{"pzm", &p.Pzm},
		intField{"pe", &p.Pe},
		intField{"pf", &p.Pf},
		intField{"pw", &p.Pw},
		intField{"pa", &p.Pa},
		intField{"ps", &p.Ps},
		intField{"pc", &p.Pc},
		intField{"pld", &p.Pld},
		numField{"X", &p.X},
		numField{"Y", &p.Y},
		numField{"relHt", &p.RelHt},
		numField{"mult", &p.Mult},
		numField{"wPset", &p.WPset},
		numField{"wPmod", &p.WPmod},
		numField{"wazm", &p.Wazm},
		numField{"Fahs", &p.Fahs},
		numField{"Xmax", &p.Xmax},
		numField{"Xmin", &p.Xmin},
		uintField{"icon", &p.Icon},
		uintField{"dir", &p.Dir},
		intField{"u_Ht", &p.UHt},
		intField{"u_XY", &p.UXY},
		intField{"u_dP", &p.UdP},
		intField{"u_F", &p.UF},
		intField{"cfd", &p.Cfd},
		when(func() bool { return p.Cfd != 0 },
			tokenField{"cfdname", &p.CfdName},
			intField{"cfddat", &p.CfdDat},
			intField{"cfdtype", &p.CfdType},
			intField{"cfdcvf", &p.CfdCvf},
		),
		lineBreak{},
	}
}

// Kind implements Record.
func (p *AirflowPath) Kind() Kind { return KindPath }

// Number implements Record.
func (p *AirflowPath) Number() int { return p.Nr }

// Read implements Record.
func (p *AirflowPath) Read(r *Reader) error { return p.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (p *AirflowPath) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindPath, opts, p.shape())
}

// Write implements Record.
func (p *AirflowPath) Write() string { return encodeShape(p.shape()) }

// WindPressure reports whether the path is subject to wind pressure.
func (p *AirflowPath) WindPressure() bool { return p.Flags.Has(PathWind) }

// SetWindPressure sets or clears the wind pressure bit.
func (p *AirflowPath) SetWindPressure(on bool) { p.Flags.Set(PathWind, on) }

// System reports whether the path is an AHS supply or return path.
func (p *AirflowPath) System() bool { return p.Flags.Has(PathSystem) }

// SetSystem sets or clears the system path bit.
func (p *AirflowPath) SetSystem(on bool) { p.Flags.Set(PathSystem, on) }

// Exhaust reports whether the path is an AHS exhaust path.
func (p *AirflowPath) Exhaust() bool { return p.Flags.Has(PathExhaust) }

// SetExhaust sets or clears the exhaust path bit.
func (p *AirflowPath) SetExhaust(on bool) { p.Flags.Set(PathExhaust, on) }

// Recirculation reports whether the path is an AHS recirculation path.
func (p *AirflowPath) Recirculation() bool { return p.Flags.Has(PathRecirculation) }

// SetRecirculation sets or clears the recirculation path bit.
func (p *AirflowPath) SetRecirculation(on bool) { p.Flags.Set(PathRecirculation, on) }

// OutsideAir reports whether the path is an AHS outside air path.
func (p *AirflowPath) OutsideAir() bool { return p.Flags.Has(PathOutsideAir) }

// SetOutsideAir sets or clears the outside air path bit.
func (p *AirflowPath) SetOutsideAir(on bool) { p.Flags.Set(PathOutsideAir, on) }
