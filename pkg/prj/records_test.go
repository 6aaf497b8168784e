package prj

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		&Zone{Nr: 1, Vol: MustText("50.0"), T0: MustText("293.15"), Name: "Office", Cfd: 1, CfdName: "office_cfd"},
		cdAxisZone(),
		&Species{
			Nr: 1, Sflag: 1, Ntflag: 0,
			Molwt: MustText("44.0098"), Mdiam: F(0), Edens: MustText("1.0"), Decay: F(0),
			Dm: MustText("2e-05"), Ccdef: MustText("6.0795e-04"), Cp: MustText("1000"),
			Ucc: 2, Umd: 0, Ued: 0, Udm: 0, Ucp: 0,
			Name: "CO2", Desc: "carbon dioxide",
		},
		&Ahs{Nr: 1, ZoneR: 3, ZoneS: 4, PathR: 5, PathS: 6, PathX: 7, Name: "AHS1", Desc: ""},
		samplePath(),
		sampleRunControl(),
		&Level{
			Nr: 2, Refht: MustText("3.0"), Delht: MustText("3.0"), URfht: 0, UDlht: 0, Name: "Second",
			Icons: []Icon{{Icon: 14, Col: 3, Row: 4, Nr: 0}, {Icon: 5, Col: 10, Row: 4, Nr: 2}},
		},
		&Level{Nr: 3, Name: "Roof"},
		&DaySchedule{
			Nr: 1, Shape: 0, Utyp: 1, Ucnv: 1, Name: "occupied", Desc: "weekday occupancy",
			Points: []SchedulePoint{
				{Time: "00:00:00", Ctrl: MustText("0")},
				{Time: "08:00:00", Ctrl: MustText("1.0")},
				{Time: "24:00:00", Ctrl: MustText("0")},
			},
		},
		&WeekSchedule{Nr: 1, Utyp: 1, Ucnv: 1, Name: "year", Desc: "one per month", J: [12]int{1, 1, 2, 2, 3, 3, 3, 3, 2, 2, 1, 1}},
		&WindPressureProfile{
			Nr: 1, Type: 1, Name: "wall", Desc: "low rise wall",
			Coeffs: []PressureCoefficientPoint{
				{Azm: MustText("0"), Coef: MustText("0.60")},
				{Azm: MustText("90"), Coef: MustText("-0.35")},
				{Azm: MustText("180"), Coef: MustText("-0.25")},
			},
		},
		&CdvDat{
			Nr: 4, DataType: "cdv", Seqnr: 2, Flags: 0, Inreq: 1, N1: 0, N2: 0,
			Name: "ambient", Desc: "outdoor temperature", ValueName: "Outdoor Temp",
		},
	}
}

func TestRecords_RoundTrip(t *testing.T) {
	for _, rec := range sampleRecords() {
		t.Run(rec.Kind().String(), func(t *testing.T) {
			text := rec.Write()

			got, err := Decode(rec.Kind(), text, DecodeOptions{})
			require.NoError(t, err)
			assert.Equal(t, rec, got)
			assert.Equal(t, text, got.Write())
		})
	}
}

func TestRecords_ConsecutiveReads(t *testing.T) {
	records := sampleRecords()
	var text string
	for _, rec := range records {
		text += rec.Write()
	}

	r := NewStringReader(text)
	for _, want := range records {
		got, err := New(want.Kind())
		require.NoError(t, err)
		require.NoError(t, got.Read(r), "reading %s", want.Kind())
		assert.Equal(t, want, got)
	}
}

func TestSpecies_Write(t *testing.T) {
	s := sampleRecords()[2].(*Species)
	assert.Equal(t,
		"1 1 0 44.0098 0 1.0 0 2e-05 6.0795e-04 1000 2 0 0 0 0 CO2\ncarbon dioxide\n",
		s.Write())
	assert.True(t, s.Simulated())
	assert.True(t, s.Trace())
}

func TestAhs_Write(t *testing.T) {
	a := &Ahs{Nr: 1, ZoneR: 3, ZoneS: 4, PathR: 5, PathS: 6, PathX: 7, Name: "AHS1", Desc: "main unit"}
	assert.Equal(t, "1 3 4 5 6 7 AHS1\nmain unit\n", a.Write())
}

func TestLevel_Write(t *testing.T) {
	l := sampleRecords()[6].(*Level)
	assert.Equal(t, "2 3.0 3.0 2 0 0 Second\n14 3 4 0\n5 10 4 2\n", l.Write())

	empty := &Level{Nr: 3, Name: "Roof"}
	assert.Equal(t, "3 0.0 0.0 0 0 0 Roof\n", empty.Write())
}

func TestDaySchedule_Write(t *testing.T) {
	d := sampleRecords()[8].(*DaySchedule)
	assert.Equal(t,
		"1 3 0 1 1 occupied\nweekday occupancy\n00:00:00 0\n08:00:00 1.0\n24:00:00 0\n",
		d.Write())
}

func TestDaySchedule_NegativeCount(t *testing.T) {
	var d DaySchedule
	err := d.Read(NewStringReader("1 -2 0 1 1 bad\ndesc\n"))
	assert.ErrorIs(t, err, ErrBadCount)
}

func TestWeekSchedule_TwelveSlots(t *testing.T) {
	w := sampleRecords()[9].(*WeekSchedule)
	assert.Equal(t, "1 1 1 year\none per month\n1 1 2 2 3 3 3 3 2 2 1 1\n", w.Write())

	t.Run("SetJ accepts twelve", func(t *testing.T) {
		j := []int{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 8}
		require.NoError(t, w.SetJ(j))
		assert.Equal(t, [12]int{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 8}, w.J)
	})

	t.Run("SetJ rejects other lengths", func(t *testing.T) {
		before := w.J
		assert.ErrorIs(t, w.SetJ([]int{1, 2, 3}), ErrBadCount)
		assert.ErrorIs(t, w.SetJ(make([]int, 13)), ErrBadCount)
		assert.Equal(t, before, w.J)
	})

	t.Run("read consumes exactly twelve", func(t *testing.T) {
		r := NewStringReader("2 0 0 w\n\n1 2 3 4 5 6 7 8 9 10 11 12 13\n")
		var got WeekSchedule
		require.NoError(t, got.Read(r))
		assert.Equal(t, [12]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got.J)

		next, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, 13, next)
	})

	t.Run("read fails on fewer than twelve", func(t *testing.T) {
		var got WeekSchedule
		assert.Error(t, got.Read(NewStringReader("2 0 0 w\n\n1 2 3\n")))
	})
}

func TestWindPressureProfile_Write(t *testing.T) {
	w := sampleRecords()[10].(*WindPressureProfile)
	assert.Equal(t,
		"1 3 1 wall\nlow rise wall\n0 0.60\n90 -0.35\n180 -0.25\n",
		w.Write())
}

func TestCdvDat(t *testing.T) {
	c := sampleRecords()[11].(*CdvDat)
	text := c.Write()
	assert.Equal(t, "4 cdv 2 0 1 0 0 ambient\noutdoor temperature\nOutdoor Temp\n", text)

	t.Run("expected data type", func(t *testing.T) {
		got := NewCdvDat("cdv")
		require.NoError(t, got.Read(NewStringReader(text)))
		assert.Equal(t, "Outdoor Temp", got.ValueName)
		assert.Equal(t, text, got.Write())
	})

	t.Run("unexpected data type", func(t *testing.T) {
		got := NewCdvDat("dat")
		err := got.Read(NewStringReader(text))
		assert.ErrorIs(t, err, ErrUnexpectedDataType)
	})

	t.Run("preset data type is written", func(t *testing.T) {
		n := NewCdvDat("dat")
		n.Nr = 1
		n.Name = "x"
		assert.Equal(t, "1 dat 0 0 0 0 0 x\n\n\n", n.Write())
	})
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)

		rec, err := New(k)
		require.NoError(t, err)
		assert.Equal(t, k, rec.Kind())
	}

	_, err := ParseKind("sketchpad")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(Kind(99))
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "kind(99)", Kind(99).String())

	k, err := ParseKind(" Zone ")
	require.NoError(t, err)
	assert.Equal(t, KindZone, k)
}

func TestDecode_TrailingInput(t *testing.T) {
	two := "1 0 0 0 0 0 a\n\n2 0 0 0 0 0 b\n\n"
	_, err := Decode(KindAhs, two, DecodeOptions{})
	assert.ErrorIs(t, err, ErrTrailingInput)

	_, err = Decode(KindLevel, "1 0.0 3.0 0 0 0 L extra\n", DecodeOptions{})
	assert.ErrorIs(t, err, ErrTrailingInput)

	got, err := Decode(KindAhs, "1 0 0 0 0 0 a\n\n\n! end of ahs\n", DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "a", got.(*Ahs).Name)
}

func TestDecode_HugeCount(t *testing.T) {
	text := "1 1099511627776 0 0 0 d\ndesc\n00:00:00 1.0\n"
	_, err := Decode(KindDaySchedule, text, DecodeOptions{})
	require.Error(t, err)

	var re *ReadError
	assert.True(t, errors.As(err, &re))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestValidate(t *testing.T) {
	for _, rec := range sampleRecords() {
		assert.NoError(t, Validate(rec), rec.Kind().String())
	}

	testCases := []struct {
		name  string
		rec   Record
		field string
	}{
		{name: "name with a space", rec: &Zone{Nr: 1, Name: "two words"}, field: "name"},
		{name: "empty name", rec: &Species{Nr: 1}, field: "name"},
		{name: "comment marker", rec: &DaySchedule{Nr: 1, Name: "d", Points: []SchedulePoint{{Time: "!00:00"}}}, field: "time"},
		{name: "line break in description", rec: &Ahs{Nr: 1, Name: "a", Desc: "one\ntwo"}, field: "desc"},
		{name: "unset run control dates", rec: &RunControl{}, field: "date_st"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.rec)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestDecode_LenientCollections(t *testing.T) {
	var bad []*FieldError
	opts := DecodeOptions{Lenient: true, OnMalformed: func(fe *FieldError) { bad = append(bad, fe) }}

	got, err := Decode(KindDaySchedule, "1 2 0 1 1 d\ndesc\n00:00:00 x\n24:00:00 1.0\n", opts)
	require.NoError(t, err)

	d := got.(*DaySchedule)
	require.Len(t, d.Points, 2)
	assert.True(t, d.Points[0].Ctrl.IsZero())
	assert.Equal(t, "0.0", d.Points[0].Ctrl.String())
	assert.Equal(t, "1.0", d.Points[1].Ctrl.String())
	require.Len(t, bad, 1)
	assert.Equal(t, "x", bad[0].Text)
}
