package model

// Transaction is a single categorized ledger entry, typically produced by
// the advisor's statement extraction.
type Transaction struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
}

// BillScanResult is the structured payload the advisor returns for a scanned
// bill document.
type BillScanResult struct {
	Biller          string  `json:"biller"`
	Amount          float64 `json:"amount"`
	DueDate         string  `json:"dueDate,omitempty"`
	IsTaxDeductible bool    `json:"isTaxDeductible"`
	Summary         string  `json:"summary,omitempty"`
}
