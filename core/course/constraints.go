package course

import (
	"time"
	"unicode/utf8"

	"github.com/trezcool/shule/core/user"
)

// Constraint descriptions, surfaced to callers on invariant violations.
const (
	TitleConstraint       = "title must be between 3 and 100 characters"
	DescriptionConstraint = "description must be between 10 and 500 characters"
	StatusConstraint      = "course status must be one of: draft, active, archived"
	DueDateConstraint     = "due date must be in the future"
	SubmissionConstraint  = "a student can only submit once for each assignment"
	GradeConstraint       = "a grade must be between 0 and the maximum points for the assignment"
	ProgressConstraint    = "enrollment progress must be between 0 and 100"
	ModifyConstraint      = "user must be an admin or the teacher of the course to modify it"
)

// The predicates below are stateless and side-effect free: they never
// report why a check failed beyond false, and invalid input (negative max
// points, zero times...) simply yields false.

// ValidTitle holds iff the title length lies strictly between 3 and 100.
func ValidTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n > 3 && n < 100
}

// ValidDescription holds iff the description length lies strictly between 10 and 500.
func ValidDescription(description string) bool {
	n := utf8.RuneCountInString(description)
	return n > 10 && n < 500
}

// ValidDueDate holds iff the due date lies strictly in the future.
func ValidDueDate(dueDate time.Time) bool {
	return dueDate.After(nowFunc())
}

// ValidProgress holds iff progress lies in [0, 100].
func ValidProgress(progress float64) bool {
	return progress >= 0 && progress <= 100
}

// GradeInRange holds iff 0 <= value <= maxPoints, both ends inclusive.
// A maxPoints of 0 makes only value == 0 valid.
func GradeInRange(value, maxPoints float64) bool {
	return value >= 0 && value <= maxPoints
}

// CanSubmit holds iff the student has no existing submission for the
// assignment. The check must be re-evaluated atomically with the
// submission append by the storage backend.
func CanSubmit(a Assignment, studentID string) bool {
	for _, sub := range a.Submissions {
		if sub.StudentID == studentID {
			return false
		}
	}
	return true
}

// CanTeach holds iff the referenced teacher may own a course.
func CanTeach(u user.User) bool {
	return u.IsTeacher() || u.IsAdmin()
}

// CanModifyCourse holds iff the actor is the course's teacher or an admin.
func CanModifyCourse(actor user.User, c Course) bool {
	return actor.IsAdmin() || c.TeacherID == actor.ID
}
