// Package prj reads and writes the records of a CONTAM PRJ project file.
//
// Each record type (Zone, Species, Ahs, AirflowPath, RunControl, Level,
// DaySchedule, WeekSchedule, WindPressureProfile and CdvDat) declares its
// wire layout once as an ordered shape of fields. The same shape drives Read
// and Write, including count-prefixed sub-collections and trailing fields
// that are present only when an earlier flag field is nonzero.
//
// # Text format
//
// Fields on a line are separated by a single space and lines end with '\n'.
// Free text such as descriptions occupies a line of its own. Variable length
// collections are preceded by their element count; fixed arrays are not.
//
// # Float fields
//
// Floating point values are kept as FloatField, which stores the decimal text
// it was given. Text read from a file or supplied through SetString is
// written back unchanged, so "1.50" stays "1.50" while Float64 reports 1.5.
// Values supplied as float64 are stored in canonical form.
//
// # Malformed input
//
// Token level problems (end of input, a non-integer where an integer belongs)
// are reported by the Reader as *ReadError. A float token that does not parse
// aborts the record with a *FieldError matching ErrMalformedNumericField,
// unless DecodeOptions.Lenient is set, in which case the field keeps its
// previous value and DecodeOptions.OnMalformed is told about it.
//
// # Usage
//
//	r := prj.NewReader(f)
//	zones, err := prj.ReadSection(r, prj.KindZone, prj.DecodeOptions{})
//	if err != nil {
//	    return err
//	}
//	out := prj.WriteSection(zones)
//
// Records are plain values with no internal locking; callers serialize
// access when sharing them between goroutines.
package prj
