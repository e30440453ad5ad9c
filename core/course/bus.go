package course

import (
	"sync"

	"github.com/pkg/errors"
)

type (
	// Observer receives course events synchronously. An implementation
	// must produce its effect (typically a Notification record) as a
	// value, never as logging; a non-nil error only affects the caller's
	// warnings, not delivery to other observers.
	Observer interface {
		Update(e Event) error
	}

	// Subject maintains a registry of observers for a single course and
	// pushes events to all of them, synchronously, in registration order.
	// All methods are safe for concurrent use.
	Subject struct {
		courseID string

		mutex     sync.RWMutex
		observers []Observer
	}

	// SubjectRegistry hands out the one Subject per course instance.
	SubjectRegistry struct {
		mutex    sync.Mutex
		subjects map[string]*Subject
	}
)

func NewSubject(courseID string) *Subject {
	return &Subject{courseID: courseID}
}

func (s *Subject) CourseID() string { return s.courseID }

// Register adds an observer to the registry. It is idempotent: registering
// the same observer twice does not cause double delivery.
func (s *Subject) Register(o Observer) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, reg := range s.observers {
		if reg == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// Unregister removes an observer from the registry; no-op if absent.
func (s *Subject) Unregister(o Observer) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, reg := range s.observers {
		if reg == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers e to every currently registered observer, in
// registration order. Delivery is fire-and-forget: a failing observer does
// not prevent delivery to the rest; its failure is collected and returned
// as a non-fatal warning.
func (s *Subject) Notify(e Event) []error {
	s.mutex.RLock()
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)
	s.mutex.RUnlock()

	var warnings []error
	for _, o := range snapshot {
		if err := o.Update(e); err != nil {
			warnings = append(warnings, errors.Wrapf(err, "delivering %s event for course %s", e.Kind, s.courseID))
		}
	}
	return warnings
}

// AssignmentAdded raises an assignment_added event.
func (s *Subject) AssignmentAdded(assignmentTitle string) []error {
	return s.Notify(Event{
		Kind:            EventAssignmentAdded,
		CourseID:        s.courseID,
		AssignmentTitle: assignmentTitle,
	})
}

// GradePublished raises a grade_published event for the given student.
func (s *Subject) GradePublished(studentID, assignmentTitle string, grade float64) []error {
	return s.Notify(Event{
		Kind:            EventGradePublished,
		CourseID:        s.courseID,
		AssignmentTitle: assignmentTitle,
		StudentID:       studentID,
		Grade:           grade,
	})
}

// AnnouncementAdded raises an announcement_added event.
func (s *Subject) AnnouncementAdded(title, message string) []error {
	return s.Notify(Event{
		Kind:     EventAnnouncementAdded,
		CourseID: s.courseID,
		Title:    title,
		Message:  message,
	})
}

func NewSubjectRegistry() *SubjectRegistry {
	return &SubjectRegistry{subjects: make(map[string]*Subject)}
}

// For returns the subject bound to the given course, creating it on first use.
func (r *SubjectRegistry) For(courseID string) *Subject {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	subj, ok := r.subjects[courseID]
	if !ok {
		subj = NewSubject(courseID)
		r.subjects[courseID] = subj
	}
	return subj
}
