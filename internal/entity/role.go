package entity

import "github.com/samandr77/microservices/portal/pkg/i18n"

type Role struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Label       i18n.Text `json:"label"`
	Permissions []string  `json:"permissions"`
}

const (
	RoleAdmin   = "admin"
	RoleEditor  = "editor"
	RoleFaculty = "faculty"
	RoleStudent = "student"
	RoleGuest   = "guest"
)

var roleLabels = map[string]i18n.Text{
	RoleAdmin:   {Ar: "مدير النظام", En: "Administrator"},
	RoleEditor:  {Ar: "محرر المحتوى", En: "Content editor"},
	RoleFaculty: {Ar: "عضو هيئة تدريس", En: "Faculty member"},
	RoleStudent: {Ar: "طالب", En: "Student"},
	RoleGuest:   {Ar: "زائر", En: "Guest"},
}

// Roles returns every known role in ascending privilege order.
func Roles() []Role {
	names := []string{RoleGuest, RoleStudent, RoleFaculty, RoleEditor, RoleAdmin}
	roles := make([]Role, 0, len(names))

	for i, name := range names {
		roles = append(roles, Role{
			ID:          i + 1,
			Name:        name,
			Label:       roleLabels[name],
			Permissions: GetPermissionsByRole(name),
		})
	}

	return roles
}

func IsValidRole(name string) bool {
	_, ok := roleLabels[name]
	return ok
}
