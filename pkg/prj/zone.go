package prj

import "strconv"

// Zone is an airflow compartment. Ps, Pc, Pk and Pl are the schedule, control
// node, kinetic reaction and level indices; they are not resolved here.
type Zone struct {
	Nr    int
	Flags ZoneFlags
	Ps    int
	Pc    int
	Pk    int
	Pl    int
	RelHt FloatField
	Vol   FloatField
	T0    FloatField
	P0    FloatField
	Name  string
	Color int
	UHt   int
	UV    int
	UT    int
	UP    int

	// Cdaxis enables the convection/diffusion axis fields below. Cfd takes
	// precedence: a CFD zone carries CfdName and no axis geometry.
	Cdaxis  int
	Cfd     int
	CfdName string

	X1     FloatField
	Y1     FloatField
	H1     FloatField
	X2     FloatField
	Y2     FloatField
	H2     FloatField
	Celldx FloatField
	AxialD FloatField
	UaD    int
	UL     int

	// IC holds the initial concentration of each species. It travels in the
	// separate initial conditions block, see WriteIC and ReadIC.
	IC []FloatField
}

func (z *Zone) shape() shape {
	return shape{
		intField{"nr", &z.Nr},
		uintField{"flags", (*uint32)(&z.Flags)},
		intField{"ps", &z.Ps},
		intField{"pc", &z.Pc},
		intField{"pk", &z.Pk},
		intField{"pl", &z.Pl},
		numField{"relHt", &z.RelHt},
		numField{"Vol", &z.Vol},
		numField{"T0", &z.T0},
		numField{"P0", &z.P0},
		tokenField{"name", &z.Name},
		intField{"color", &z.Color},
		intField{"u_Ht", &z.UHt},
		intField{"u_V", &z.UV},
		intField{"u_T", &z.UT},
		intField{"u_P", &z.UP},
		intField{"cdaxis", &z.Cdaxis},
		intField{"cfd", &z.Cfd},
		when(func() bool { return z.Cfd != 0 },
			tokenField{"cfdname", &z.CfdName},
		),
		when(func() bool { return z.Cfd == 0 && z.Cdaxis != 0 },
			numField{"X1", &z.X1},
			numField{"Y1", &z.Y1},
			numField{"H1", &z.H1},
			numField{"X2", &z.X2},
			numField{"Y2", &z.Y2},
			numField{"H2", &z.H2},
			numField{"celldx", &z.Celldx},
			numField{"axialD", &z.AxialD},
			intField{"u_aD", &z.UaD},
			intField{"u_L", &z.UL},
		),
		lineBreak{},
	}
}

// Kind implements Record.
func (z *Zone) Kind() Kind { return KindZone }

// Number implements Record.
func (z *Zone) Number() int { return z.Nr }

// Read implements Record.
func (z *Zone) Read(r *Reader) error { return z.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (z *Zone) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindZone, opts, z.shape())
}

// Write implements Record.
func (z *Zone) Write() string { return encodeShape(z.shape()) }

// VariablePressure reports the variable pressure bit.
func (z *Zone) VariablePressure() bool { return z.Flags.Has(ZoneVariablePressure) }

// SetVariablePressure sets or clears the variable pressure bit.
func (z *Zone) SetVariablePressure(on bool) { z.Flags.Set(ZoneVariablePressure, on) }

// VariableContaminants reports the variable contaminants bit.
func (z *Zone) VariableContaminants() bool { return z.Flags.Has(ZoneVariableContaminants) }

// SetVariableContaminants sets or clears the variable contaminants bit.
func (z *Zone) SetVariableContaminants(on bool) { z.Flags.Set(ZoneVariableContaminants, on) }

// VariableTemperature reports the variable temperature bit.
func (z *Zone) VariableTemperature() bool { return z.Flags.Has(ZoneVariableTemperature) }

// SetVariableTemperature sets or clears the variable temperature bit.
func (z *Zone) SetVariableTemperature(on bool) { z.Flags.Set(ZoneVariableTemperature, on) }

// System reports whether the zone belongs to an air-handling system.
func (z *Zone) System() bool { return z.Flags.Has(ZoneSystem) }

// SetSystem sets or clears the system zone bit.
func (z *Zone) SetSystem(on bool) { z.Flags.Set(ZoneSystem, on) }

// Unconditioned reports the unconditioned space bit.
func (z *Zone) Unconditioned() bool { return z.Flags.Has(ZoneUnconditioned) }

// SetUnconditioned sets or clears the unconditioned space bit.
func (z *Zone) SetUnconditioned(on bool) { z.Flags.Set(ZoneUnconditioned, on) }

// SetIC replaces IC if every element is valid float text. Otherwise IC is
// left untouched and false is returned.
func (z *Zone) SetIC(texts []string) bool {
	ic, ok := parseFloatFields(texts)
	if !ok {
		return false
	}
	z.IC = ic
	return true
}

// SetICValues replaces IC with the canonical text of values.
func (z *Zone) SetICValues(values []float64) {
	z.IC = floatFieldsOf(values)
}

// ICAt returns the initial concentration of species i. It panics if i is out
// of range, like a slice index.
func (z *Zone) ICAt(i int) FloatField {
	return z.IC[i]
}

// SetICAt sets the initial concentration of species i.
func (z *Zone) SetICAt(i int, v Value) bool {
	if i < 0 || i >= len(z.IC) {
		return false
	}
	return z.IC[i].Set(v)
}

func icElem(f *FloatField) shape {
	return shape{numField{"ic", f}}
}

// WriteIC returns the zone's line in the initial conditions block.
func (z *Zone) WriteIC() string {
	nr, n := z.Nr, len(z.IC)
	return encodeShape(shape{
		intField{"nr", &nr},
		each("ic", &n, &z.IC, icElem),
		lineBreak{},
	})
}

// ReadIC reads the zone's line of the initial conditions block holding nctm
// species values. The line's zone number must match Nr.
func (z *Zone) ReadIC(r *Reader, nctm int, opts DecodeOptions) error {
	var nr int
	if err := decodeShape(r, KindZone, opts, shape{intField{"nr", &nr}}); err != nil {
		return err
	}
	if nr != z.Nr {
		return &FieldError{Record: KindZone, Field: "nr", Text: strconv.Itoa(nr), Line: r.Line(), Err: ErrICMismatch}
	}
	return decodeShape(r, KindZone, opts, shape{each("ic", &nctm, &z.IC, icElem)})
}
