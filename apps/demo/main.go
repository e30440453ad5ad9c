// Command demo wires the whole core together by hand and walks through a
// term's worth of activity: users, a course with a module and an
// assignment, a submission, a grade and the notifications that fan out of
// it.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/notification"
	"github.com/trezcool/shule/core/user"
	logsvc "github.com/trezcool/shule/services/logger"
	notifiersvc "github.com/trezcool/shule/services/notifier"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, "DEMO : ", log.LstdFlags)

	// set up logger; ship to rollbar outside DEV
	var logger core.Logger = logsvc.NewStdLogger(std)
	if !core.Conf.Debug && core.Conf.RollbarToken != "" {
		rollbarLogger := logsvc.NewRollbarLogger(std, core.Conf)
		rollbarLogger.Enable(!core.Conf.Debug)
		logger = rollbarLogger
	}

	// set up DB & repos
	db, err := inmemdb.Open()
	errAndDie(err)
	usrRepo := inmemdb.NewUserRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	notifRepo := inmemdb.NewNotificationRepository(db)

	// set up services
	usrSvc := user.NewService(usrRepo)
	crsSvc := course.NewService(crsRepo, logger)
	notifSvc := notification.NewService(notifRepo)
	sender := notifiersvc.NewConsoleSender()

	// people
	teacher, err := usrSvc.Create(user.NewUser{Name: "Ms. Otero", Email: "otero@shule.cd", Role: user.RoleTeacher})
	errAndDie(err)
	alice, err := usrSvc.Create(user.NewUser{Name: "Alice", Email: "alice@shule.cd", Role: user.RoleStudent})
	errAndDie(err)
	bob, err := usrSvc.Create(user.NewUser{Name: "Bob", Email: "bob@shule.cd", Role: user.RoleStudent})
	errAndDie(err)

	// course content
	crs, err := crsSvc.Create(teacher, course.NewCourse{
		Title:       "Intro to Design Patterns",
		Description: "Observers, decorators and friends, with working examples.",
	})
	errAndDie(err)

	// both students follow the course
	crsSvc.Subject(crs.ID).Register(notification.NewStudentObserver(alice, notifRepo))
	crsSvc.Subject(crs.ID).Register(notification.NewStudentObserver(bob, notifRepo))

	mod, err := crsSvc.AddModule(teacher, crs.ID, course.NewModule{
		Title:       "Behavioral patterns",
		Description: "One-to-many dependencies without tight coupling.",
	})
	errAndDie(err)

	asg, _, err := crsSvc.AddAssignment(teacher, crs.ID, mod.ID, course.NewAssignment{
		Title:       "Build an event bus",
		Description: "Implement a subject with idempotent registration.",
		DueDate:     time.Now().Add(7 * 24 * time.Hour),
		MaxPoints:   20,
	})
	errAndDie(err)

	sub, err := crsSvc.SubmitAssignment(alice, crs.ID, asg.ID, course.NewSubmission{Content: "here goes"})
	errAndDie(err)

	grd, _, err := crsSvc.GradeSubmission(teacher, crs.ID, asg.ID, sub.ID, 18, "solid work")
	errAndDie(err)
	fmt.Printf("graded %s: %.0f/%.0f (passing: %t)\n",
		alice.Name, grd.Value, asg.MaxPoints, course.IsPassing(mustSubmission(crsSvc, crs.ID, asg.ID, alice.ID), asg))

	_, err = crsSvc.AddAnnouncement(teacher, crs.ID, "Welcome!", "First session starts Monday.")
	errAndDie(err)

	// composed capabilities
	end := time.Now().Add(30 * 24 * time.Hour)
	view := course.Compose(crs, course.Options{
		AccessEndDate:       &end,
		ExtraMaterials:      []string{"pattern-cheatsheet.pdf"},
		CertificateTemplate: "Certificate of Completion awarded to {studentName}",
	})
	fmt.Printf("composed: %s (accessible: %t)\n", view.Title, view.IsAccessible())
	fmt.Println(view.GenerateCertificate(alice.Name))

	// deliver each student's inbox through the console sender
	for _, usr := range []user.User{alice, bob} {
		notifs, err := notifSvc.ForUser(usr.ID)
		errAndDie(err)
		fmt.Printf("%s has %d notification(s)\n", usr.Name, len(notifs))
		for _, n := range notifs {
			_, err := sender.Send(n.UserID, n.Title, n.Message, n.Type)
			errAndDie(err)
		}
	}
}

func mustSubmission(svc *course.Service, courseID, assignmentID, studentID string) course.Submission {
	crs, err := svc.GetByID(courseID)
	errAndDie(err)
	asg, ok := crs.Assignment(assignmentID)
	if !ok {
		log.Fatal(course.ErrAssignmentNotFound)
	}
	sub, ok := course.StudentSubmission(*asg, studentID)
	if !ok {
		log.Fatal(course.ErrSubmissionNotFound)
	}
	return sub
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
