package audit

import "time"

// Entry is one append-only audit record of a privileged mutation. Entries are
// never updated or pruned.
type Entry struct {
	ID        string
	UserID    string
	CompanyID *string
	Action    string
	Model     string
	RecordID  string
	Reason    *string
	CreatedAt time.Time

	UserEmail   *string
	CompanyName *string
}
