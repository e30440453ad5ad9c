package course

// EventKind defines the closed set of domain events a course can raise.
type EventKind string

const (
	EventAssignmentAdded   EventKind = "assignment_added"
	EventGradePublished    EventKind = "grade_published"
	EventAnnouncementAdded EventKind = "announcement_added"
)

// Event is the payload delivered to observers registered on a course subject.
// Only the fields relevant to its Kind are set.
type Event struct {
	Kind     EventKind `json:"type"`
	CourseID string    `json:"courseId"`

	// assignment_added, grade_published
	AssignmentTitle string `json:"assignmentTitle,omitempty"`

	// grade_published
	StudentID string  `json:"studentId,omitempty"`
	Grade     float64 `json:"grade,omitempty"`

	// announcement_added
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}
