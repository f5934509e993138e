package auth

const (
	PermRoleView   = "role.view"
	PermRoleCreate = "role.create"
	PermRoleUpdate = "role.update"
	PermRoleDelete = "role.delete"

	PermUserView   = "user.view"
	PermUserUpdate = "user.update"

	PermVehicleBook = "vehicle.book"
	PermAdminPanel  = "admin.panel"
)

// BuiltinPermissions is the catalog ensured at startup. Roles reference
// these by key; adding a capability here requires no engine change.
var BuiltinPermissions = []Permission{
	{Key: PermRoleView, Description: "See role definitions and their permissions"},
	{Key: PermRoleCreate, Description: "Create roles"},
	{Key: PermRoleUpdate, Description: "Update roles and their permission sets"},
	{Key: PermRoleDelete, Description: "Delete roles"},
	{Key: PermUserView, Description: "See user accounts"},
	{Key: PermUserUpdate, Description: "Create and update user accounts"},
	{Key: PermVehicleBook, Description: "Book a vehicle through the fleet services"},
	{Key: PermAdminPanel, Description: "Access the administrative panel"},
}

// AdminRoleName is the bootstrap role holding every builtin permission.
const AdminRoleName = "admin"
