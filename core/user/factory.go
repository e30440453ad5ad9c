package user

import (
	"github.com/google/uuid"
)

// New constructs a User of the given role. The role set is closed:
// anything outside AllRoles yields a ValidationError carrying the role
// constraint description, and no User.
func New(name, email string, role Role) (User, error) {
	nu := NewUser{Name: name, Email: email, Role: role}
	if err := nu.Validate(); err != nil {
		return User{}, err
	}

	usr := User{
		ID:    uuid.New().String(),
		Name:  nu.Name,
		Email: nu.Email,
	}
	switch role {
	case RoleStudent:
		usr.Role = RoleStudent
	case RoleTeacher:
		usr.Role = RoleTeacher
	case RoleAdmin:
		usr.Role = RoleAdmin
	}
	return usr, nil
}
