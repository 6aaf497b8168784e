package prj

import "fmt"

// MonthsPerYear is the number of day schedule slots in a week schedule.
const MonthsPerYear = 12

// SchedulePoint is one (time, control value) pair of a day schedule.
type SchedulePoint struct {
	Time string // HH:MM:SS
	Ctrl FloatField
}

func (p *SchedulePoint) shape() shape {
	return shape{
		tokenField{"time", &p.Time},
		numField{"ctrl", &p.Ctrl},
		lineBreak{},
	}
}

// DaySchedule is a piecewise profile over one day.
type DaySchedule struct {
	Nr     int
	Shape  int
	Utyp   int
	Ucnv   int
	Name   string
	Desc   string
	Points []SchedulePoint
}

func (d *DaySchedule) shape() shape {
	npts := len(d.Points)
	return shape{
		intField{"nr", &d.Nr},
		intField{"npts", &npts},
		intField{"shape", &d.Shape},
		intField{"utyp", &d.Utyp},
		intField{"ucnv", &d.Ucnv},
		tokenField{"name", &d.Name},
		lineField{"desc", &d.Desc},
		each("points", &npts, &d.Points, (*SchedulePoint).shape),
	}
}

// Kind implements Record.
func (d *DaySchedule) Kind() Kind { return KindDaySchedule }

// Number implements Record.
func (d *DaySchedule) Number() int { return d.Nr }

// Read implements Record.
func (d *DaySchedule) Read(r *Reader) error { return d.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (d *DaySchedule) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindDaySchedule, opts, d.shape())
}

// Write implements Record.
func (d *DaySchedule) Write() string { return encodeShape(d.shape()) }

// WeekSchedule assigns a day schedule to each of the twelve slots the file
// format reserves, one per month.
type WeekSchedule struct {
	Nr   int
	Utyp int
	Ucnv int
	Name string
	Desc string
	J    [MonthsPerYear]int
}

func (w *WeekSchedule) shape() shape {
	return shape{
		intField{"nr", &w.Nr},
		intField{"utyp", &w.Utyp},
		intField{"ucnv", &w.Ucnv},
		tokenField{"name", &w.Name},
		lineField{"desc", &w.Desc},
		intArray{"j", w.J[:]},
		lineBreak{},
	}
}

// Kind implements Record.
func (w *WeekSchedule) Kind() Kind { return KindWeekSchedule }

// Number implements Record.
func (w *WeekSchedule) Number() int { return w.Nr }

// Read implements Record.
func (w *WeekSchedule) Read(r *Reader) error { return w.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (w *WeekSchedule) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindWeekSchedule, opts, w.shape())
}

// Write implements Record.
func (w *WeekSchedule) Write() string { return encodeShape(w.shape()) }

// SetJ copies j into J. It fails without changes unless len(j) is 12.
func (w *WeekSchedule) SetJ(j []int) error {
	if len(j) != MonthsPerYear {
		return fmt.Errorf("%w: week schedule needs %d day schedules, got %d", ErrBadCount, MonthsPerYear, len(j))
	}
	copy(w.J[:], j)
	return nil
}
