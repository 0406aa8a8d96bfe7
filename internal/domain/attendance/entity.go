package attendance

import "time"

type MarkType string

const (
	MarkEntrance MarkType = "entrada"
	MarkExit     MarkType = "salida"
)

// ValidMarkType reports whether t is a known mark type.
func ValidMarkType(t MarkType) bool {
	return t == MarkEntrance || t == MarkExit
}

// ClockEvent is a single entrance or exit mark. The timestamp is always
// server-assigned and the hash is computed once at creation; neither is ever
// rewritten afterwards.
type ClockEvent struct {
	ID        string
	WorkerID  string
	Type      MarkType
	Timestamp time.Time
	Hash      string

	// Joined relations for responses.
	WorkerFirstNames *string
	WorkerLastNames  *string
	CompanyID        *string
	CompanyName      *string
}
