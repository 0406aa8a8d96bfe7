package leave

import "errors"

var (
	ErrNotFound             = errors.New("leave request not found")
	ErrOnlyWorkers          = errors.New("only workers can create leave requests")
	ErrNoWorkerAssociated   = errors.New("user has no associated worker")
	ErrHRRoleRequired       = errors.New("hr role required to resolve leave requests")
	ErrCompanyNotAuthorized = errors.New("company not authorized")
	ErrAlreadyResolved      = errors.New("leave request already resolved")
)
