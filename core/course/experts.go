package course

import (
	"math"
	"strings"
)

// Derived, side-effect-free queries over assignments and submissions.
// These never mutate state and never raise events.

// passing threshold, in percent
const passingScore = 60.0

// SubmissionCount returns the number of submissions on the assignment.
func SubmissionCount(a Assignment) int { return len(a.Submissions) }

// GradedSubmissionCount returns the number of graded submissions.
func GradedSubmissionCount(a Assignment) int {
	var n int
	for _, sub := range a.Submissions {
		if sub.IsGraded() {
			n++
		}
	}
	return n
}

// AverageGrade returns the mean grade over graded submissions,
// or 0 when none are graded.
func AverageGrade(a Assignment) float64 {
	var sum float64
	var n int
	for _, sub := range a.Submissions {
		if sub.IsGraded() {
			sum += *sub.Grade
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// HasStudentSubmitted reports whether the student has a submission on the assignment.
func HasStudentSubmitted(a Assignment, studentID string) bool {
	return !CanSubmit(a, studentID)
}

// StudentSubmission returns the student's submission, if any.
func StudentSubmission(a Assignment, studentID string) (Submission, bool) {
	for _, sub := range a.Submissions {
		if sub.StudentID == studentID {
			return sub, true
		}
	}
	return Submission{}, false
}

// AllSubmissionsGraded reports whether every submission has been graded.
// An assignment with no submissions has nothing graded.
func AllSubmissionsGraded(a Assignment) bool {
	if len(a.Submissions) == 0 {
		return false
	}
	for _, sub := range a.Submissions {
		if !sub.IsGraded() {
			return false
		}
	}
	return true
}

// PointsAchieved returns the submission's grade, or 0 if ungraded.
func PointsAchieved(s Submission) float64 {
	if !s.IsGraded() {
		return 0
	}
	return *s.Grade
}

// PercentageScore returns the submission's score as a percentage of the
// assignment's max points; 0 if ungraded.
func PercentageScore(s Submission, a Assignment) float64 {
	if !s.IsGraded() || a.MaxPoints == 0 {
		return 0
	}
	return *s.Grade / a.MaxPoints * 100
}

// IsLate reports whether the submission came in strictly after the due date.
func IsLate(s Submission, a Assignment) bool {
	return s.SubmittedAt.After(a.DueDate)
}

// DaysLate returns how many whole days late the submission was, rounding
// up; 0 if on time.
func DaysLate(s Submission, a Assignment) int {
	if !IsLate(s, a) {
		return 0
	}
	return int(math.Ceil(s.SubmittedAt.Sub(a.DueDate).Hours() / 24))
}

// LateSubmissionCount returns the number of submissions that came in
// after the due date.
func LateSubmissionCount(a Assignment) int {
	var n int
	for _, sub := range a.Submissions {
		if IsLate(sub, a) {
			n++
		}
	}
	return n
}

// IsPassing reports whether the submission is graded and scores at least
// the passing threshold.
func IsPassing(s Submission, a Assignment) bool {
	return s.IsGraded() && PercentageScore(s, a) >= passingScore
}

// HasFeedback reports whether non-blank feedback was provided.
func HasFeedback(s Submission) bool {
	return strings.TrimSpace(s.Feedback) != ""
}
