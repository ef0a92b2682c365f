package models

// SlipPDFData is everything the print template needs: the fully
// resolved slip with formatted dates, the recomputed payment totals and
// the payable amount in words.
type SlipPDFData struct {
	Slip         *Slip
	PayableWords string
	GeneratedAt  string
}
