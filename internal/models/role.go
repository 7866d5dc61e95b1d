package models

// Role is a login role offered on the login screen
type Role string

const (
	RoleAdmin           Role = "Admin"
	RoleStaff           Role = "Staff"
	RoleSupervisor      Role = "Supervisor"
	RoleStoreSupervisor Role = "Store Supervisor"
)

// Roles lists the login roles in the order they are offered
var Roles = []Role{RoleAdmin, RoleStaff, RoleSupervisor, RoleStoreSupervisor}

// RolePaths maps each role to its dashboard path
var RolePaths = map[Role]string{
	RoleAdmin:           "/admin",
	RoleStaff:           "/staff",
	RoleSupervisor:      "/supervisor",
	RoleStoreSupervisor: "/store-supervisor",
}

// Path returns the dashboard path for the role, or "" if the role is unknown
func (r Role) Path() string {
	return RolePaths[r]
}
