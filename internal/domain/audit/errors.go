package audit

import "errors"

var (
	ErrRoleNotAllowed = errors.New("audit access restricted to admin_rrhh and fiscalizador")
)
