package constants

// Role names as stored in users.user_role.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleHOD        = "hod"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)

// Allowed-role sets for the route gates.
var (
	AdminAndAbove   = []string{RoleSuperAdmin, RoleAdmin}
	StaffAndAbove   = []string{RoleSuperAdmin, RoleAdmin, RoleHOD, RoleTeacher}
	TeachingStaff   = []string{RoleHOD, RoleTeacher}
	AllRoles        = []string{RoleSuperAdmin, RoleAdmin, RoleHOD, RoleTeacher, RoleStudent}
)

// ValidRole reports whether r is one of the five known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHOD, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
