package entity

import "strings"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

// OneOf reports whether the role is in the allow-list, case-insensitively.
func (r UserRole) OneOf(roles ...UserRole) bool {
	for _, allowed := range roles {
		if strings.EqualFold(string(r), string(allowed)) {
			return true
		}
	}
	return false
}
