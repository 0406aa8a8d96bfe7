package attendance

import "errors"

var (
	ErrNoWorkerAssociated = errors.New("user has no associated worker")
	ErrInvalidMarkType    = errors.New("mark type must be 'entrada' or 'salida'")

	// State transition conflicts
	ErrEntranceAlreadyOpen   = errors.New("an entrance is already open today")
	ErrNoEntranceToday       = errors.New("no entrance registered today")
	ErrExitAlreadyRegistered = errors.New("an exit is already registered after the last entrance")
)
