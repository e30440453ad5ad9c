package course

import (
	"time"

	"github.com/trezcool/shule/core"
)

// Course statuses
const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Material types
const (
	MaterialText  MaterialType = "text"
	MaterialVideo MaterialType = "video"
	MaterialPDF   MaterialType = "pdf"
	MaterialLink  MaterialType = "link"
)

// Enrollment statuses
const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

type (
	Status           string
	MaterialType     string
	EnrollmentStatus string

	// Course is the root aggregate: it exclusively owns its Modules.
	Course struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		TeacherID   string    `json:"teacherId"`
		Status      Status    `json:"status"`
		Modules     []Module  `json:"modules"`
		CreatedAt   time.Time `json:"createdAt"` // UTC
		UpdatedAt   time.Time `json:"updatedAt"` // UTC
	}

	// Module exclusively owns its Materials and Assignments.
	Module struct {
		ID          string       `json:"id"`
		Title       string       `json:"title"`
		Description string       `json:"description"`
		CourseID    string       `json:"courseId"`
		Order       int          `json:"order"`
		Materials   []Material   `json:"materials"`
		Assignments []Assignment `json:"assignments"`
	}

	Material struct {
		ID       string       `json:"id"`
		Title    string       `json:"title"`
		Type     MaterialType `json:"type"`
		Content  string       `json:"content"`
		ModuleID string       `json:"moduleId"`
		Order    int          `json:"order"`
	}

	// Assignment owns its Submissions.
	Assignment struct {
		ID          string       `json:"id"`
		Title       string       `json:"title"`
		Description string       `json:"description"`
		DueDate     time.Time    `json:"dueDate"`
		ModuleID    string       `json:"moduleId"`
		MaxPoints   float64      `json:"maxPoints"`
		Submissions []Submission `json:"submissions"`
	}

	// Submission holds a non-owning back-reference to its student.
	// Grade and Feedback are absent until the submission is graded.
	Submission struct {
		ID           string    `json:"id"`
		StudentID    string    `json:"studentId"`
		AssignmentID string    `json:"assignmentId"`
		Content      string    `json:"content"`
		SubmittedAt  time.Time `json:"submittedAt"` // UTC
		Grade        *float64  `json:"grade,omitempty"`
		Feedback     string    `json:"feedback,omitempty"`
	}

	// Grade records a single grading act on a submission.
	Grade struct {
		ID           string    `json:"id"`
		Value        float64   `json:"value"`
		Feedback     string    `json:"feedback,omitempty"`
		AssignmentID string    `json:"assignmentId"`
		StudentID    string    `json:"studentId"`
		GradedBy     string    `json:"gradedBy"`
		GradedAt     time.Time `json:"gradedAt"` // UTC
	}

	Enrollment struct {
		ID         string           `json:"id"`
		StudentID  string           `json:"studentId"`
		CourseID   string           `json:"courseId"`
		EnrolledAt time.Time        `json:"enrolledAt"` // UTC
		Status     EnrollmentStatus `json:"status"`
		Progress   float64          `json:"progress"` // [0, 100]
	}

	// CalendarEvent is a plain schedule record; it has no behavior in the core.
	CalendarEvent struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description,omitempty"`
		StartTime   time.Time `json:"startTime"`
		EndTime     time.Time `json:"endTime"`
		Location    string    `json:"location,omitempty"`
		CourseID    string    `json:"courseId,omitempty"`
		Users       []string  `json:"users"`
		Date        time.Time `json:"date"`
		Attendees   int       `json:"attendees,omitempty"`
	}
)

// Valid reports whether s is one of the known course statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	}
	return false
}

// Valid reports whether t is one of the known material types.
func (t MaterialType) Valid() bool {
	switch t {
	case MaterialText, MaterialVideo, MaterialPDF, MaterialLink:
		return true
	}
	return false
}

// Valid reports whether s is one of the known enrollment statuses.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentDropped:
		return true
	}
	return false
}

// IsGraded reports whether the submission has been graded.
func (s Submission) IsGraded() bool { return s.Grade != nil }

// Module returns the module with the given id.
func (c *Course) Module(moduleID string) (*Module, bool) {
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

// Assignment returns the assignment with the given id, searching all modules.
func (c *Course) Assignment(assignmentID string) (*Assignment, bool) {
	for i := range c.Modules {
		for j := range c.Modules[i].Assignments {
			if c.Modules[i].Assignments[j].ID == assignmentID {
				return &c.Modules[i].Assignments[j], true
			}
		}
	}
	return nil, false
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string `json:"title" validate:"required,notblank,gt=3,lt=100"`
	Description string `json:"description" validate:"required,notblank,gt=10,lt=500"`
}

func (nc *NewCourse) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	return core.TranslateError(core.Validate.Struct(nc))
}

// NewModule contains information needed to add a Module to a Course.
type NewModule struct {
	Title       string `json:"title" validate:"required,notblank,gt=3,lt=100"`
	Description string `json:"description" validate:"required,notblank,gt=10,lt=500"`
}

func (nm *NewModule) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	return core.TranslateError(core.Validate.Struct(nm))
}

// NewMaterial contains information needed to add a Material to a Module.
type NewMaterial struct {
	Title   string       `json:"title" validate:"required,notblank,gt=3,lt=100"`
	Type    MaterialType `json:"type" validate:"required,materialtype"`
	Content string       `json:"content" validate:"required,notblank"`
}

func (nm *NewMaterial) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Content = core.CleanString(nm.Content)
	return core.TranslateError(core.Validate.Struct(nm))
}

// NewAssignment contains information needed to add an Assignment to a Module.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required,notblank,gt=3,lt=100"`
	Description string    `json:"description" validate:"required,notblank,gt=10,lt=500"`
	DueDate     time.Time `json:"dueDate" validate:"required,futuredate"`
	MaxPoints   float64   `json:"maxPoints" validate:"gte=0"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	return core.TranslateError(core.Validate.Struct(na))
}

// NewSubmission contains information needed to submit an assignment.
type NewSubmission struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (ns *NewSubmission) Validate() error {
	ns.Content = core.CleanString(ns.Content)
	return core.TranslateError(core.Validate.Struct(ns))
}
