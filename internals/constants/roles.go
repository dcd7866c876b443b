package constants

import "fmt"

// Role user sesuai kolom users.role
const (
	RoleSuperAdmin = "super_admin"
	RoleCoAdmin    = "co_admin"
	RoleFaculty    = "faculty"
	RoleStudent    = "student"
	RoleParent     = "parent"
	RoleCounselor  = "counselor"
	RoleB2CStudent = "b2c_student"
	RoleB2CMentor  = "b2c_mentor"
)

// Template pesan error role
const (
	ErrOnlyFacultyCanAccess = "❌ Hanya faculty atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrMustBeLoggedIn       = "❌ Hanya pengguna terautentikasi yang boleh mengakses fitur %s."
)

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLoggedIn(feature string) string {
	return fmt.Sprintf(ErrMustBeLoggedIn, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleCoAdmin,
		RoleFaculty,
		RoleStudent,
		RoleParent,
		RoleCounselor,
		RoleB2CStudent,
		RoleB2CMentor,
	}

	AdminRoles = []string{
		RoleSuperAdmin,
		RoleCoAdmin,
	}

	FacultyAndAbove = []string{
		RoleFaculty,
		RoleCoAdmin,
		RoleSuperAdmin,
	}

	StaffRoles = []string{
		RoleSuperAdmin,
		RoleCoAdmin,
		RoleFaculty,
		RoleCounselor,
	}

	// Role yang boleh memakai fitur generator AI
	GeneratorRoles = []string{
		RoleSuperAdmin,
		RoleCoAdmin,
		RoleFaculty,
		RoleCounselor,
		RoleB2CMentor,
		RoleB2CStudent,
		RoleStudent,
	}
)

// ValidRole memeriksa apakah string role dikenal sistem.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
