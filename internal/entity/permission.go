package entity

import "slices"

const (
	PermissionViewContent   = "view_content"
	PermissionUseChat       = "use_chat"
	PermissionViewDashboard = "view_dashboard"
	PermissionManageContent = "manage_content"
	PermissionManageEvents  = "manage_events"
	PermissionManageUsers   = "manage_users"
	PermissionDeleteUsers   = "delete_users"
	PermissionManageRoles   = "manage_roles"
)

func GetPermissionsByRole(roleName string) []string {
	rolePermissions := map[string][]string{
		RoleStudent: {
			PermissionViewContent,
			PermissionUseChat,
		},
		RoleFaculty: {
			PermissionViewContent,
			PermissionUseChat,
			PermissionManageEvents,
		},
		RoleEditor: {
			PermissionViewContent,
			PermissionUseChat,
			PermissionViewDashboard,
			PermissionManageContent,
			PermissionManageEvents,
		},
		RoleAdmin: {
			PermissionViewContent,
			PermissionUseChat,
			PermissionViewDashboard,
			PermissionManageContent,
			PermissionManageEvents,
			PermissionManageUsers,
			PermissionDeleteUsers,
			PermissionManageRoles,
		},
	}

	permissions, exists := rolePermissions[roleName]
	if !exists {
		return []string{PermissionViewContent, PermissionUseChat}
	}

	return permissions
}

func HasPermission(roleName, permission string) bool {
	return slices.Contains(GetPermissionsByRole(roleName), permission)
}
