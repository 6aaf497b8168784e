package prj

// RunControl is the simulation-wide configuration record. No field is range
// checked; solver selectors are stored as the codes found in the file.
type RunControl struct {
	// airflow solver
	SimAf   int
	AfCalc  int
	AfMaxi  int
	AfRcnvg FloatField
	AfAcnvg FloatField
	AfRelax FloatField
	Uac     int
	Pres    FloatField
	UPres   int

	// airflow linear solver
	AfSlae  int
	AfRseq  int
	AfLmaxi int
	AfLcnvg FloatField
	AfLinit int
	Tadj    int

	// contaminant solver
	SimMf   int
	CcMaxi  int
	CcRcnvg FloatField
	CcAcnvg FloatField
	CcRelax FloatField
	Uccc    int

	// non-trace contaminant solver
	MfnMthd  int
	MfnRseq  int
	MfnMaxi  int
	MfnRcnvg FloatField
	MfnAcnvg FloatField
	MfnRelax FloatField
	MfnGamma FloatField
	Uccn     int

	// trace contaminant solver
	MftMthd  int
	MftRseq  int
	MftMaxi  int
	MftRcnvg FloatField
	MftAcnvg FloatField
	MftRelax FloatField
	MftGamma FloatField
	Ucct     int

	// cvode solver for 1-D zones
	MfvMthd  int
	MfvRseq  int
	MfvMaxi  int
	MfvRcnvg FloatField
	MfvRelax FloatField
	Uccv     int

	// 1-D zones and ducts
	MfSolver int
	Sim1dz   int
	Sim1dd   int
	Celldx   FloatField
	SimVjt   int
	Udx      int

	CvodeMth   int
	CvodeRcnvg FloatField
	CvodeAcnvg FloatField
	CvodeDtmax FloatField

	TsDens  int
	TsRelax FloatField
	TsMaxi  int
	CnvgSS  int
	DensZP  int
	StackD  int
	DodMdt  int

	// simulation window, as written in the file (e.g. "Jan01", "00:00:00")
	DateSt   string
	TimeSt   string
	Date0    string
	Time0    string
	Date1    string
	Time1    string
	TimeStep string
	TimeList string
	TimeScrn string

	Restart int
	RstDate string
	RstTime string

	// output files
	List    int
	DoDlg   int
	PfSave  int
	ZfSave  int
	ZcSave  int
	AchVol  int
	AchSave int
	AbwSave int
	CbwSave int
	ExpSave int
	EbwSave int
	ZaaSave int
	ZbwSave int
	RzfSave int
	RzmSave int
	Rz1Save int
	CsmSave int
	SrfSave int
	LogSave int

	// Save is unused by CONTAM and subject to change.
	Save [16]int

	Rvals []FloatField

	BldgFlowZ int
	BldgFlowD int
	BldgFlowC int

	CfdCtype   int
	CfdConvcpl FloatField
	CfdVar     int
	CfdZref    int
	CfdImax    int
	CfdDtcmo   int
}

func (rc *RunControl) shape() shape {
	nrvals := len(rc.Rvals)
	return shape{
		intField{"sim_af", &rc.SimAf},
		intField{"afcalc", &rc.AfCalc},
		intField{"afmaxi", &rc.AfMaxi},
		numField{"afrcnvg", &rc.AfRcnvg},
		numField{"afacnvg", &rc.AfAcnvg},
		numField{"afrelax", &rc.AfRelax},
		intField{"uac", &rc.Uac},
		numField{"Pres", &rc.Pres},
		intField{"uPres", &rc.UPres},
		lineBreak{},

		intField{"afslae", &rc.AfSlae},
		intField{"afrseq", &rc.AfRseq},
		intField{"aflmaxi", &rc.AfLmaxi},
		numField{"aflcnvg", &rc.AfLcnvg},
		intField{"aflinit", &rc.AfLinit},
		intField{"Tadj", &rc.Tadj},
		lineBreak{},

		intField{"sim_mf", &rc.SimMf},
		intField{"ccmaxi", &rc.CcMaxi},
		numField{"ccrcnvg", &rc.CcRcnvg},
		numField{"ccacnvg", &rc.CcAcnvg},
		numField{"ccrelax", &rc.CcRelax},
		intField{"uccc", &rc.Uccc},
		lineBreak{},

		intField{"mfnmthd", &rc.MfnMthd},
		intField{"mfnrseq", &rc.MfnRseq},
		intField{"mfnmaxi", &rc.MfnMaxi},
		numField{"mfnrcnvg", &rc.MfnRcnvg},
		numField{"mfnacnvg", &rc.MfnAcnvg},
		numField{"mfnrelax", &rc.MfnRelax},
		numField{"mfngamma", &rc.MfnGamma},
		intField{"uccn", &rc.Uccn},
		lineBreak{},

		intField{"mftmthd", &rc.MftMthd},
		intField{"mftrseq", &rc.MftRseq},
		intField{"mftmaxi", &rc.MftMaxi},
		numField{"mftrcnvg", &rc.MftRcnvg},
		numField{"mftacnvg", &rc.MftAcnvg},
		numField{"mftrelax", &rc.MftRelax},
		numField{"mftgamma", &rc.MftGamma},
		intField{"ucct", &rc.Ucct},
		lineBreak{},

		intField{"mfvmthd", &rc.MfvMthd},
		intField{"mfvrseq", &rc.MfvRseq},
		intField{"mfvmaxi", &rc.MfvMaxi},
		numField{"mfvrcnvg", &rc.MfvRcnvg},
		numField{"mfvrelax", &rc.MfvRelax},
		intField{"uccv", &rc.Uccv},
		lineBreak{},

		intField{"mf_solver", &rc.MfSolver},
		intField{"sim_1dz", &rc.Sim1dz},
		intField{"sim_1dd", &rc.Sim1dd},
		numField{"celldx", &rc.Celldx},
		intField{"sim_vjt", &rc.SimVjt},
		intField{"udx", &rc.Udx},
		lineBreak{},

		intField{"cvode_mth", &rc.CvodeMth},
		numField{"cvode_rcnvg", &rc.CvodeRcnvg},
		numField{"cvode_acnvg", &rc.CvodeAcnvg},
		numField{"cvode_dtmax", &rc.CvodeDtmax},
		lineBreak{},

		intField{"tsdens", &rc.TsDens},
		numField{"tsrelax", &rc.TsRelax},
		intField{"tsmaxi", &rc.TsMaxi},
		intField{"cnvgSS", &rc.CnvgSS},
		intField{"densZP", &rc.DensZP},
		intField{"stackD", &rc.StackD},
		intField{"dodMdt", &rc.DodMdt},
		lineBreak{},

		tokenField{"date_st", &rc.DateSt},
		tokenField{"time_st", &rc.TimeSt},
		tokenField{"date_0", &rc.Date0},
		tokenField{"time_0", &rc.Time0},
		tokenField{"date_1", &rc.Date1},
		tokenField{"time_1", &rc.Time1},
		tokenField{"time_step", &rc.TimeStep},
		tokenField{"time_list", &rc.TimeList},
		tokenField{"time_scrn", &rc.TimeScrn},
		lineBreak{},

		intField{"restart", &rc.Restart},
		tokenField{"rstdate", &rc.RstDate},
		tokenField{"rsttime", &rc.RstTime},
		lineBreak{},

		intField{"list", &rc.List},
		intField{"doDlg", &rc.DoDlg},
		intField{"pfsave", &rc.PfSave},
		intField{"zfsave", &rc.ZfSave},
		intField{"zcsave", &rc.ZcSave},
		lineBreak{},

		intField{"achvol", &rc.AchVol},
		intField{"achsave", &rc.AchSave},
		intField{"abwsave", &rc.AbwSave},
		intField{"cbwsave", &rc.CbwSave},
		intField{"expsave", &rc.ExpSave},
		intField{"ebwsave", &rc.EbwSave},
		intField{"zaasave", &rc.ZaaSave},
		intField{"zbwsave", &rc.ZbwSave},
		intField{"rzfsave", &rc.RzfSave},
		intField{"rzmsave", &rc.RzmSave},
		intField{"rz1save", &rc.Rz1Save},
		intField{"csmsave", &rc.CsmSave},
		intField{"srfsave", &rc.SrfSave},
		intField{"logsave", &rc.LogSave},
		lineBreak{},

		intArray{"save", rc.Save[:]},
		lineBreak{},

		intField{"nrvals", &nrvals},
		lineBreak{},
		each("rvals", &nrvals, &rc.Rvals, func(f *FloatField) shape {
			return shape{numField{"rvals", f}}
		}),
		lineBreak{},

		intField{"BldgFlowZ", &rc.BldgFlowZ},
		intField{"BldgFlowD", &rc.BldgFlowD},
		intField{"BldgFlowC", &rc.BldgFlowC},
		lineBreak{},

		intField{"cfd_ctype", &rc.CfdCtype},
		numField{"cfd_convcpl", &rc.CfdConvcpl},
		intField{"cfd_var", &rc.CfdVar},
		intField{"cfd_zref", &rc.CfdZref},
		intField{"cfd_imax", &rc.CfdImax},
		intField{"cfd_dtcmo", &rc.CfdDtcmo},
		lineBreak{},
	}
}

// Kind implements Record.
func (rc *RunControl) Kind() Kind { return KindRunControl }

// Number implements Record. The run control record is unique.
func (rc *RunControl) Number() int { return 0 }

// Read implements Record.
func (rc *RunControl) Read(r *Reader) error { return rc.ReadWith(r, DecodeOptions{}) }

// ReadWith implements Record.
func (rc *RunControl) ReadWith(r *Reader, opts DecodeOptions) error {
	return decodeShape(r, KindRunControl, opts, rc.shape())
}

// Write implements Record.
func (rc *RunControl) Write() string { return encodeShape(rc.shape()) }

// SetRvals replaces Rvals if every element is valid float text. Otherwise
// Rvals is left untouched and false is returned.
func (rc *RunControl) SetRvals(texts []string) bool {
	rvals, ok := parseFloatFields(texts)
	if !ok {
		return false
	}
	rc.Rvals = rvals
	return true
}

// SetRvalValues replaces Rvals with the canonical text of values.
func (rc *RunControl) SetRvalValues(values []float64) {
	rc.Rvals = floatFieldsOf(values)
}
