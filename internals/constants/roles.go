package constants

import "fmt"

const (
	RoleAdmin    = "Admin"
	RoleEducator = "Educator"
	RoleStudent  = "Student"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess    = "❌ Only admins may access %s."
	ErrOnlyEducatorsCanAccess = "❌ Only educators or admins may access %s."
	ErrOnlyStudentsCanAccess  = "❌ Only students may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEducator(feature string) string {
	return fmt.Sprintf(ErrOnlyEducatorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleEducator,
		RoleStudent,
	}

	EducatorAndAbove = []string{
		RoleEducator,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
