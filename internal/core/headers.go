package core

// Header is one column of the report: a short letter/name line and an
// optional one-line formula description. The text is aligned to the CMiC
// accounting convention and must be reproduced verbatim.
type Header struct {
	Title   string
	Formula string
}

// Label renders the two-line column label ("Title\n(Formula)"); columns
// without a formula render the title alone.
func (h Header) Label() string {
	if h.Formula == "" {
		return h.Title
	}
	return h.Title + "\n" + h.Formula
}

// Headers is the static column catalog, parallel to ForecastRow.Columns.
var Headers = [15]Header{
	{Title: "A. Current Cost Budget", Formula: "(Original Budget + Posted PCIs Thru Current Period)"},
	{Title: "B. Spent/Committed (Less Advance SCOs)", Formula: "(C - SCOs Issued On Unposted PCI/OCO)"},
	{Title: "C. Spent/Committed Total", Formula: "(Committed $ + $ Spent Outside Commitment)"},
	{Title: "Current Period Cost"},
	{Title: "D. Unposted Internal PCI Cost Budget"},
	{Title: "E. Unposted External PCI Cost Budget"},
	{Title: "F. Unposted Int & Ext PCI Cost Budget Adjusted", Formula: "(D+E if not overridden)"},
	{Title: "G. Cost to Complete", Formula: "(A - C) unless A less than B, then (CTC = 0)"},
	{Title: "H. Cost To Complete Unposted PCIs", Formula: "(F - Advanced SCOs)"},
	{Title: "I. Cost Forecast", Formula: "(C + G + H)  or  (A + F if G not overridden)"},
	{Title: "J. Current Revenue Budget", Formula: "(Original Budget + Posted PCIs Thru Current Period)"},
	{Title: "K. Unposted PCI Revenue Budget"},
	{Title: "L. Unposted PCI Revenue Budget Adjusted", Formula: "(K if not overridden)"},
	{Title: "M. Revenue Forecast", Formula: "(J + L)"},
	{Title: "N. Projected Gain/Loss", Formula: "(M - I)"},
}

// HeaderLabels returns the 15 two-line labels in column order.
func HeaderLabels() []string {
	labels := make([]string, len(Headers))
	for i, h := range Headers {
		labels[i] = h.Label()
	}
	return labels
}
