package main

import (
	"fmt"

	"github.com/trezcool/shule/core/user"
)

// addUser creates a new user.User with the given role.
func (cli *commandLine) addUser(name, email string, role user.Role) error {
	usr, err := cli.usrSvc.Create(user.NewUser{Name: name, Email: email, Role: role})
	if err != nil {
		return err
	}
	fmt.Printf("%s user created: %s <%s>\n", usr.Role, usr.Name, usr.Email)
	return nil
}
