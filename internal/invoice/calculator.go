// internal/invoice/calculator.go
package invoice

import (
	"strings"

	"recruit-backoffice/internal/common/config"
)

// Calculator derives the placement fee and GST split. It is pure and
// total: malformed numeric input coerces to zero instead of failing, so
// the calculate endpoint can run on every keystroke of a half-filled form.
type Calculator struct {
	homeState string
	cgstBp    int64
	sgstBp    int64
	igstBp    int64
}

func NewCalculator(cfg config.InvoiceConfig) *Calculator {
	c := &Calculator{
		homeState: cfg.HomeState,
		cgstBp:    int64(cfg.CGSTBasisPts),
		sgstBp:    int64(cfg.SGSTBasisPts),
		igstBp:    int64(cfg.IGSTBasisPts),
	}
	if c.homeState == "" {
		c.homeState = "Tamil Nadu"
	}
	if c.cgstBp == 0 && c.sgstBp == 0 && c.igstBp == 0 {
		c.cgstBp, c.sgstBp, c.igstBp = 900, 900, 1800
	}
	return c
}

// Calculate returns the derived money block for an input. The placement
// amount comes from the percentage of CTC or the fixed fee depending on
// the discriminator; the tax jurisdiction comes from comparing the client
// state against the agency's home state.
func (c *Calculator) Calculate(in CalcInput) Breakdown {
	var amount Paise
	switch in.PlacementType {
	case PlacementFixed:
		amount = ParseRupees(in.PlacementFee)
	default:
		// Percentage is the form's default mode.
		ctc := ParseRupees(in.CTC)
		pctBp := int64(ParseRupees(in.PlacementPercent))
		amount = applyBasisPoints(ctc, pctBp)
	}

	out := Breakdown{
		PlacementAmount: amount,
		Intrastate:      strings.TrimSpace(in.ClientState) == c.homeState,
	}

	if out.Intrastate {
		out.CGST = applyBasisPoints(amount, c.cgstBp)
		out.SGST = applyBasisPoints(amount, c.sgstBp)
	} else {
		out.IGST = applyBasisPoints(amount, c.igstBp)
	}

	out.TotalGST = out.CGST + out.SGST + out.IGST
	out.TotalAmount = amount + out.TotalGST
	return out
}
