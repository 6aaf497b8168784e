package prj

// ZoneFlags is the bit set stored in a zone's flags field.
type ZoneFlags uint32

// Zone flag bits
const (
	ZoneVariablePressure ZoneFlags = 1 << iota
	ZoneVariableContaminants
	ZoneVariableTemperature
	ZoneSystem
	ZoneUnconditioned
	ZoneCVODE
)

// Has reports whether every bit in b is set.
func (f ZoneFlags) Has(b ZoneFlags) bool { return f&b == b }

// With returns f with b set.
func (f ZoneFlags) With(b ZoneFlags) ZoneFlags { return f | b }

// Without returns f with b cleared.
func (f ZoneFlags) Without(b ZoneFlags) ZoneFlags { return f &^ b }

// Set sets or clears b in place, leaving the other bits untouched.
func (f *ZoneFlags) Set(b ZoneFlags, on bool) {
	if on {
		*f = f.With(b)
		return
	}
	*f = f.Without(b)
}

// PathFlags is the bit set stored in an airflow path's flags field.
type PathFlags uint32

// Path flag bits
const (
	PathWind PathFlags = 1 << iota
	PathWPCPressure
	PathWPCConcentration
	PathSystem
	PathRecirculation
	PathOutsideAir
	PathExhaust
	PathPressureLimits
	PathFlowLimits
	PathConstantFlowFan
)

// PathAHS is any of the air-handling system path bits.
const PathAHS = PathSystem | PathRecirculation | PathOutsideAir | PathExhaust

// Has reports whether every bit in b is set.
func (f PathFlags) Has(b PathFlags) bool { return f&b == b }

// With returns f with b set.
func (f PathFlags) With(b PathFlags) PathFlags { return f | b }

// Without returns f with b cleared.
func (f PathFlags) Without(b PathFlags) PathFlags { return f &^ b }

// Set sets or clears b in place, leaving the other bits untouched.
func (f *PathFlags) Set(b PathFlags, on bool) {
	if on {
		*f = f.With(b)
		return
	}
	*f = f.Without(b)
}
