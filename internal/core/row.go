package core

// ForecastRow is one computed forecast line for a (project, cost code,
// flag-set) triple. Field letters follow the CMiC convention; every field is
// produced by exactly one formula in the derivation engine and the row is
// never mutated after construction.
//
// L is stored independently of K even though it currently always equals K:
// it is the landing slot for a future manual revenue override, so callers
// may assign to it without touching K.
type ForecastRow struct {
	// CostCode is the display label: "{code} — {description}".
	CostCode string `json:"cost_code"`

	A             Amount `json:"a"`              // Current Cost Budget
	B             Amount `json:"b"`              // Spent/Committed (Less Advance SCOs)
	C             Amount `json:"c"`              // Spent/Committed Total
	CurrentPeriod Amount `json:"current_period"` // informational only, feeds no formula
	D             Amount `json:"d"`              // Unposted Internal PCI Cost Budget
	E             Amount `json:"e"`              // Unposted External PCI Cost Budget
	F             Amount `json:"f"`              // D + E
	G             Amount `json:"g"`              // Cost to Complete, clamped >= 0
	H             Amount `json:"h"`              // CTC Unposted PCIs, clamped >= 0
	I             Amount `json:"i"`              // Cost Forecast
	J             Amount `json:"j"`              // Current Revenue Budget
	K             Amount `json:"k"`              // Unposted PCI Revenue Budget
	L             Amount `json:"l"`              // K until a manual override lands
	M             Amount `json:"m"`              // Revenue Forecast: J + L
	N             Amount `json:"n"`              // Projected Gain/Loss: M - I
}

// Columns returns the row's amounts in catalog order, parallel to Headers.
func (r ForecastRow) Columns() []Amount {
	return []Amount{
		r.A, r.B, r.C, r.CurrentPeriod,
		r.D, r.E, r.F,
		r.G, r.H, r.I,
		r.J, r.K, r.L,
		r.M, r.N,
	}
}
