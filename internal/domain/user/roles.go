package user

// Centrally defined role sets. Scope changes happen here, not at call sites.
var (
	// RolesWithCompanies are the roles whose company visibility comes from
	// affiliation rows rather than a worker record.
	RolesWithCompanies = []Role{RoleHRAdmin, RoleHRAssistant, RoleAuditor}

	// RolesHR are the roles allowed to resolve leave and vacation requests.
	RolesHR = []Role{RoleHRAdmin, RoleHRAssistant}
)

// RoleIn reports whether r is a member of set.
func RoleIn(r Role, set []Role) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleWorker, RoleHRAssistant, RoleHRAdmin, RoleAuditor:
		return true
	}
	return false
}
