package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/user"
)

var nowFunc = time.Now // mockable

// StudentObserver turns course events into Notification records addressed
// to its bound student. Grade events are filtered to the graded student;
// assignment and announcement events always notify.
type StudentObserver struct {
	student user.User
	repo    Repository
}

var _ course.Observer = (*StudentObserver)(nil)

func NewStudentObserver(student user.User, repo Repository) *StudentObserver {
	return &StudentObserver{student: student, repo: repo}
}

func (o *StudentObserver) Student() user.User { return o.student }

func (o *StudentObserver) Update(e course.Event) error {
	var notif Notification

	switch e.Kind {
	case course.EventAssignmentAdded:
		notif = o.newNotification(
			"New Assignment",
			fmt.Sprintf("A new assignment %q has been added to your course.", e.AssignmentTitle),
			TypeAssignment,
		)
	case course.EventGradePublished:
		if e.StudentID != o.student.ID {
			return nil
		}
		notif = o.newNotification(
			"Grade Posted",
			fmt.Sprintf("Your grade for %q has been posted.", e.AssignmentTitle),
			TypeGrade,
		)
	case course.EventAnnouncementAdded:
		notif = o.newNotification(e.Title, e.Message, TypeAnnouncement)
	default:
		return nil
	}

	_, err := o.repo.CreateNotification(notif)
	return err
}

func (o *StudentObserver) newNotification(title, message string, typ Type) Notification {
	return Notification{
		ID:        uuid.New().String(),
		UserID:    o.student.ID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: nowFunc().UTC(),
	}
}
