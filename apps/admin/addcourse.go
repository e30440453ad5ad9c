package main

import (
	"fmt"

	"github.com/trezcool/shule/core/course"
)

// addCourse creates a new course owned by the teacher with the given email.
func (cli *commandLine) addCourse(teacherEmail, title, description string) error {
	teacher, err := cli.usrSvc.GetByEmail(teacherEmail)
	if err != nil {
		return err
	}
	crs, err := cli.crsSvc.Create(teacher, course.NewCourse{Title: title, Description: description})
	if err != nil {
		return err
	}
	fmt.Printf("course created: %s (%s)\n", crs.Title, crs.Status)
	return nil
}
