package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRUTExists          = errors.New("rut already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAdminRoleRequired  = errors.New("admin_rrhh role required")
	ErrAccessDenied       = errors.New("access denied")
	ErrCompanyNotAllowed  = errors.New("company not authorized for this user")
	ErrUserBlocked        = errors.New("user is not active")
	ErrWorkerNotLinkable  = errors.New("worker already linked to another user")
	ErrAffiliationInvalid = errors.New("invalid company affiliation")
)
