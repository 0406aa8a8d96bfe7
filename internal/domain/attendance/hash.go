package attendance

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// eventDigest is the canonical serialization hashed into ClockEvent.Hash.
// Field order is alphabetical by JSON key so the digest is reproducible
// across implementations given identical field values.
type eventDigest struct {
	MarkType         string `json:"mark_type"`
	Timestamp        string `json:"timestamp"`
	WorkerFirstName  string `json:"worker_first_name"`
	WorkerLastName   string `json:"worker_last_name"`
	WorkerNationalID string `json:"worker_national_id"`
}

// EventHash computes the tamper-evidence digest for a clock event: SHA-256
// over the canonical JSON of (timestamp, worker identity, mark type).
// It is a pure function of its inputs and must never be recomputed on update.
func EventHash(timestamp time.Time, nationalID, firstName, lastName string, markType MarkType) string {
	payload, _ := json.Marshal(eventDigest{
		MarkType:         string(markType),
		Timestamp:        timestamp.Format(time.RFC3339),
		WorkerFirstName:  firstName,
		WorkerLastName:   lastName,
		WorkerNationalID: nationalID,
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
