// internal/invoice/models.go
package invoice

// Placement fee modes. Exactly one of the two amount fields is read,
// selected by the discriminator.
const (
	PlacementPercentage = "percentage"
	PlacementFixed      = "fixed"
)

// Form is the invoice submission shape. Amounts arrive as decimal strings
// the way the entry form produces them; parsing happens inside the
// calculator.
type Form struct {
	CandidateID      string `json:"candidate_id" validate:"required"`
	CandidateName    string `json:"candidate_name" validate:"required"`
	ClientName       string `json:"client_name" validate:"required"`
	ClientAddress    string `json:"client_address"`
	ClientState      string `json:"client_state" validate:"required"`
	ClientPAN        string `json:"client_pan" validate:"omitempty,pan"`
	ClientGSTIN      string `json:"client_gstin" validate:"omitempty,gstin"`
	InvoiceDate      string `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	CTC              string `json:"ctc" validate:"required"`
	PlacementType    string `json:"placement_type" validate:"required,oneof=percentage fixed"`
	PlacementPercent string `json:"placement_percent"`
	PlacementFee     string `json:"placement_fee"`
	Notes            string `json:"notes"`
}

// CalcInput is the subset of the form the tax math reads. It is kept
// separate so the calculate endpoint can run on partial forms while the
// user is still typing.
type CalcInput struct {
	CTC              string `json:"ctc"`
	PlacementType    string `json:"placement_type"`
	PlacementPercent string `json:"placement_percent"`
	PlacementFee     string `json:"placement_fee"`
	ClientState      string `json:"client_state"`
}

// Breakdown is the derived money block. Exactly one tax path is active:
// intrastate splits into CGST+SGST, interstate is all IGST.
type Breakdown struct {
	PlacementAmount Paise `json:"placement_amount"`
	CGST            Paise `json:"cgst"`
	SGST            Paise `json:"sgst"`
	IGST            Paise `json:"igst"`
	TotalGST        Paise `json:"total_gst"`
	TotalAmount     Paise `json:"total_amount"`
	Intrastate      bool  `json:"intrastate"`
}
