package vacation

import "errors"

var (
	ErrNotFound             = errors.New("vacation request not found")
	ErrOnlyWorkers          = errors.New("only workers can request vacations")
	ErrNoWorkerAssociated   = errors.New("user has no associated worker")
	ErrHRRoleRequired       = errors.New("hr role required to resolve vacation requests")
	ErrCompanyNotAuthorized = errors.New("company not authorized")
	ErrAlreadyResolved      = errors.New("vacation request already resolved")
)
