package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role is a coarse access category a user can hold.
type Role string

const (
	RoleTenant   Role = "Tenant"
	RoleLandlord Role = "Landlord"
	RoleAgent    Role = "Agent"
	RoleStaff    Role = "Staff"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleAgent, RoleStaff:
		return true
	}
	return false
}

// StaffRole is the finer access category for users holding the Staff role.
type StaffRole string

const (
	StaffRoleSuperUser StaffRole = "SuperUser"
	StaffRoleEditor    StaffRole = "Editor"
	StaffRoleViewer    StaffRole = "Viewer"
)

// Valid reports whether the staff role is a known value.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleSuperUser, StaffRoleEditor, StaffRoleViewer:
		return true
	}
	return false
}

// RoleList stores a user's role set as a JSON array column.
type RoleList []Role

// Contains reports whether the list includes the given role.
func (l RoleList) Contains(role Role) bool {
	for _, r := range l {
		if r == role {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (l RoleList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *RoleList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for RoleList", value)
}
