package prj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRunControl() *RunControl {
	rc := &RunControl{
		SimAf: 1, AfCalc: 1, AfMaxi: 100, AfRcnvg: MustText("1e-05"), AfAcnvg: MustText("1e-06"),
		AfRelax: MustText("0.75"), Uac: 2, Pres: MustText("101325.0"), UPres: 3,
		AfSlae: 1, AfRseq: 1, AfLmaxi: 500, AfLcnvg: MustText("1e-06"), AfLinit: 1, Tadj: 0,
		SimMf: 1, CcMaxi: 50, CcRcnvg: MustText("1e-04"), CcAcnvg: MustText("1e-15"), CcRelax: MustText("1.25"), Uccc: 4,
		MfnMthd: 0, MfnRseq: 1, MfnMaxi: 1000, MfnRcnvg: MustText("1e-04"), MfnAcnvg: MustText("1e-15"),
		MfnRelax: MustText("1.25"), MfnGamma: MustText("0"), Uccn: 1,
		MftMthd: 1, MftRseq: 1, MftMaxi: 1000, MftRcnvg: MustText("1e-05"), MftAcnvg: MustText("1e-15"),
		MftRelax: MustText("1.25"), MftGamma: MustText("0"), Ucct: 1,
		MfvMthd: 2, MfvRseq: 1, MfvMaxi: 100, MfvRcnvg: MustText("1e-06"), MfvRelax: MustText("1.1"), Uccv: 1,
		MfSolver: 1, Sim1dz: 1, Sim1dd: 1, Celldx: MustText("0.1"), SimVjt: 0, Udx: 0,
		CvodeMth: 0, CvodeRcnvg: MustText("0.001"), CvodeAcnvg: MustText("1e-13"), CvodeDtmax: MustText("0"),
		TsDens: 0, TsRelax: MustText("0.5"), TsMaxi: 20, CnvgSS: 1, DensZP: 0, StackD: 0, DodMdt: 0,
		DateSt: "Jan01", TimeSt: "00:00:00", Date0: "Jan01", Time0: "00:00:00", Date1: "Dec31", Time1: "24:00:00",
		TimeStep: "00:05:00", TimeList: "01:00:00", TimeScrn: "01:00:00",
		Restart: 0, RstDate: "Jan01", RstTime: "00:00:00",
		List: 1, DoDlg: 0, PfSave: 1, ZfSave: 1, ZcSave: 1,
		AchVol: 0, AchSave: 1, AbwSave: 0, CbwSave: 0, ExpSave: 0, EbwSave: 0, ZaaSave: 0, ZbwSave: 0,
		RzfSave: 1, RzmSave: 1, Rz1Save: 0, CsmSave: 1, SrfSave: 0, LogSave: 1,
		BldgFlowZ: 0, BldgFlowD: 0, BldgFlowC: 0,
		CfdCtype: 0, CfdConvcpl: MustText("0.01"), CfdVar: 0, CfdZref: 0, CfdImax: 100, CfdDtcmo: 1,
	}
	for i := range rc.Save {
		rc.Save[i] = i % 3
	}
	return rc
}

func TestRunControl_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		rvals []float64
	}{
		{name: "no rvals"},
		{name: "one rval", rvals: []float64{0.5}},
		{name: "several rvals", rvals: []float64{1.5, 2, 3.25}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rc := sampleRunControl()
			if tc.rvals != nil {
				rc.SetRvalValues(tc.rvals)
			}
			text := rc.Write()

			var got RunControl
			require.NoError(t, got.Read(NewStringReader(text)))
			assert.Equal(t, *rc, got)
			assert.Len(t, got.Rvals, len(tc.rvals))
			assert.Equal(t, text, got.Write())
		})
	}
}

func TestRunControl_RvalsCountPrecedesValues(t *testing.T) {
	rc := sampleRunControl()
	rc.SetRvalValues([]float64{1.5, 2, 3.25})

	text := rc.Write()
	assert.Contains(t, text, "\n3\n1.5 2 3.25\n")

	rc.Rvals = rc.Rvals[:1]
	assert.Contains(t, rc.Write(), "\n1\n1.5\n", "count follows the current slice length")

	rc.Rvals = nil
	assert.Contains(t, rc.Write(), "\n0\n0 0 0\n")
}

func TestRunControl_SaveIsSixteenInts(t *testing.T) {
	rc := sampleRunControl()
	lines := strings.Split(rc.Write(), "\n")
	require.Greater(t, len(lines), 14)
	assert.Equal(t, "0 1 2 0 1 2 0 1 2 0 1 2 0 1 2 0", lines[13])
	assert.Len(t, strings.Fields(lines[13]), 16)
}

func TestRunControl_Layout(t *testing.T) {
	rc := sampleRunControl()
	lines := strings.Split(strings.TrimSuffix(rc.Write(), "\n"), "\n")

	assert.Equal(t, "1 1 100 1e-05 1e-06 0.75 2 101325.0 3", lines[0])
	assert.Equal(t, "Jan01 00:00:00 Jan01 00:00:00 Dec31 24:00:00 00:05:00 01:00:00 01:00:00", lines[9])
	assert.Equal(t, "0 Jan01 00:00:00", lines[10])
	assert.Equal(t, "0", lines[14], "nrvals")
	assert.Equal(t, "0 0.01 0 0 100 1", lines[len(lines)-1])

	widths := []int{9, 6, 6, 8, 8, 6, 6, 4, 7, 9, 3, 5, 14, 16, 1, 3, 6}
	require.Len(t, lines, len(widths))
	for i, w := range widths {
		assert.Len(t, strings.Fields(lines[i]), w, "line %d", i+1)
	}
}

func TestRunControl_SetRvals(t *testing.T) {
	rc := &RunControl{}
	require.True(t, rc.SetRvals([]string{"1.0", "2.50"}))
	assert.Equal(t, []FloatField{MustText("1.0"), MustText("2.50")}, rc.Rvals)

	assert.False(t, rc.SetRvals([]string{"3", "nope"}))
	assert.Equal(t, []FloatField{MustText("1.0"), MustText("2.50")}, rc.Rvals)
}

func TestRunControl_MalformedRval(t *testing.T) {
	rc := sampleRunControl()
	rc.SetRvalValues([]float64{1, 2})
	text := strings.Replace(rc.Write(), "\n2\n1 2\n", "\n2\n1 x\n", 1)

	var got RunControl
	err := got.Read(NewStringReader(text))
	assert.ErrorIs(t, err, ErrMalformedNumericField)
}
