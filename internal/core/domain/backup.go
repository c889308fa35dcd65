package domain

// Backup is a full point-in-time union of every data document, written as a
// single snapshot under backups/.
type Backup struct {
	CreatedAt    string        `json:"createdAt"` // RFC 3339
	CreatedBy    string        `json:"createdBy"`
	Members      []Member      `json:"members"`
	Savings      []Saving      `json:"savings"`
	Loans        []Loan        `json:"loans"`
	Payments     []Payment     `json:"payments"`
	Fines        []FinePayment `json:"fines"`
	Expenditures []Expenditure `json:"expenditures"`
	Settings     Settings      `json:"settings"`
	ChatMessages []ChatMessage `json:"chatMessages"`
}

// BackupIndexEntry records one snapshot in the backup index document, since
// the remote backend contract has no directory listing.
type BackupIndexEntry struct {
	Path      string `json:"path"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
}
