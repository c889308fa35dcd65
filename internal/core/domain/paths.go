package domain

// Logical document paths inside the remote repository. One JSON array or
// object per path; the store treats paths as opaque keys.
const (
	MembersPath      = "data/members.json"
	SavingsPath      = "data/savings.json"
	LoansPath        = "data/loans.json"
	PaymentsPath     = "data/payments.json"
	FinesPath        = "data/fines.json"
	ExpendituresPath = "data/expenditures.json"
	SettingsPath     = "data/settings.json"
	ChatMessagesPath = "data/chat-messages.json"
	BackupIndexPath  = "backups/index.json"
	BackupPrefix     = "backups/"
)
