package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/user"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	usrSvc *user.Service
	crsSvc *course.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -name NAME -email EMAIL [-role student|teacher|admin] - create a user")
	fmt.Println("  addcourse -teacher EMAIL -title TITLE -description DESC - create a course")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserRole := addUserCmd.String("role", string(user.RoleStudent), "The user's role.")

	addCourseCmd := flag.NewFlagSet("addcourse", flag.ExitOnError)
	addCourseTeacher := addCourseCmd.String("teacher", "", "The owning teacher's email.")
	addCourseTitle := addCourseCmd.String("title", "", "The course title.")
	addCourseDesc := addCourseCmd.String("description", "", "The course description.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserEmail, user.Role(*addUserRole))
	case "addcourse":
		if err := addCourseCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addCourseTeacher == "" || *addCourseTitle == "" || *addCourseDesc == "" {
			addCourseCmd.Usage()
			return errHelp
		}
		return cli.addCourse(*addCourseTeacher, *addCourseTitle, *addCourseDesc)
	default:
		cli.printUsage()
		return errHelp
	}
}
