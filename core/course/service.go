package course

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/user"
)

var (
	// errors
	ErrNotFound           = errors.New("course not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSubmissionExists   = errors.New("student already has a submission for this assignment")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateCourse(c Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		QueryCoursesByTeacher(teacherID string) ([]Course, error)
		UpdateCourse(c Course) (Course, error)
		// AddSubmission appends sub to its assignment iff the student has
		// no existing submission for it; the uniqueness check and the
		// append happen atomically. ErrSubmissionExists on a duplicate.
		AddSubmission(courseID string, sub Submission) (Course, error)
		DeleteCoursesByID(ids ...string) error
	}

	// Warnings are non-fatal observer delivery failures reported alongside
	// an otherwise-successful operation.
	Warnings []error

	// Service coordinates course use cases: it authorizes the actor,
	// checks invariants, mutates the aggregate and raises domain events.
	// A failed operation performs no mutation.
	Service struct {
		repo     Repository
		subjects *SubjectRegistry
		logger   core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{
		repo:     repo,
		subjects: NewSubjectRegistry(),
		logger:   logger,
	}
}

// Subject returns the event subject bound to the given course, so hosts
// can register and unregister observers.
func (svc *Service) Subject(courseID string) *Subject {
	return svc.subjects.For(courseID)
}

// Create creates a new course owned by the actor. Only teachers and
// admins may create courses; admin-created courses start out active,
// teacher-created ones start as drafts.
func (svc *Service) Create(actor user.User, nc NewCourse) (Course, error) {
	if !actor.CanManageCourses() {
		return Course{}, core.NewUnauthorizedError("only teachers and administrators can create courses")
	}
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}

	status := StatusDraft
	if actor.IsAdmin() {
		status = StatusActive
	}
	now := nowFunc().UTC()
	crs := Course{
		ID:          uuid.New().String(),
		Title:       nc.Title,
		Description: nc.Description,
		TeacherID:   actor.ID,
		Status:      status,
		Modules:     []Module{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateCourse(crs)
}

// AddModule appends a new module to the course; its order is the current
// module count. Only the course's teacher or an admin may add modules.
func (svc *Service) AddModule(actor user.User, courseID string, nm NewModule) (Module, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return Module{}, err
	}
	if !CanModifyCourse(actor, crs) {
		return Module{}, core.NewUnauthorizedError("only the course teacher or an administrator can add modules")
	}
	if err := nm.Validate(); err != nil {
		return Module{}, err
	}

	mod := Module{
		ID:          uuid.New().String(),
		Title:       nm.Title,
		Description: nm.Description,
		CourseID:    crs.ID,
		Order:       len(crs.Modules),
		Materials:   []Material{},
		Assignments: []Assignment{},
	}
	crs.Modules = append(crs.Modules, mod)
	crs.UpdatedAt = nowFunc().UTC()
	if _, err := svc.repo.UpdateCourse(crs); err != nil {
		return Module{}, err
	}
	return mod, nil
}

// AddMaterial appends a new material to the module; its order is the
// current material count. Same authorization rule as AddModule.
func (svc *Service) AddMaterial(actor user.User, courseID, moduleID string, nm NewMaterial) (Material, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return Material{}, err
	}
	if !CanModifyCourse(actor, crs) {
		return Material{}, core.NewUnauthorizedError("only the course teacher or an administrator can add materials")
	}
	if err := nm.Validate(); err != nil {
		return Material{}, err
	}

	mod, ok := crs.Module(moduleID)
	if !ok {
		return Material{}, ErrModuleNotFound
	}
	mat := Material{
		ID:       uuid.New().String(),
		Title:    nm.Title,
		Type:     nm.Type,
		Content:  nm.Content,
		ModuleID: mod.ID,
		Order:    len(mod.Materials),
	}
	mod.Materials = append(mod.Materials, mat)
	crs.UpdatedAt = nowFunc().UTC()
	if _, err := svc.repo.UpdateCourse(crs); err != nil {
		return Material{}, err
	}
	return mat, nil
}

// AddAssignment appends a new assignment to the module and raises an
// assignment_added event. Same authorization rule as AddModule.
func (svc *Service) AddAssignment(actor user.User, courseID, moduleID string, na NewAssignment) (Assignment, Warnings, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return Assignment{}, nil, err
	}
	if !CanModifyCourse(actor, crs) {
		return Assignment{}, nil, core.NewUnauthorizedError("only the course teacher or an administrator can add assignments")
	}
	if err := na.Validate(); err != nil {
		return Assignment{}, nil, err
	}

	mod, ok := crs.Module(moduleID)
	if !ok {
		return Assignment{}, nil, ErrModuleNotFound
	}
	asg := Assignment{
		ID:          uuid.New().String(),
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		ModuleID:    mod.ID,
		MaxPoints:   na.MaxPoints,
		Submissions: []Submission{},
	}
	mod.Assignments = append(mod.Assignments, asg)
	crs.UpdatedAt = nowFunc().UTC()
	if _, err := svc.repo.UpdateCourse(crs); err != nil {
		return Assignment{}, nil, err
	}

	warns := svc.subjects.For(crs.ID).AssignmentAdded(asg.Title)
	svc.warn(warns)
	return asg, warns, nil
}

// SubmitAssignment records the student's submission. A student may submit
// at most once per assignment; the storage backend re-checks uniqueness
// atomically with the append. No event is raised.
func (svc *Service) SubmitAssignment(actor user.User, courseID, assignmentID string, ns NewSubmission) (Submission, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return Submission{}, err
	}
	if !actor.IsStudent() {
		return Submission{}, core.NewUnauthorizedError("only students can submit assignments")
	}
	if err := ns.Validate(); err != nil {
		return Submission{}, err
	}

	asg, ok := crs.Assignment(assignmentID)
	if !ok {
		return Submission{}, ErrAssignmentNotFound
	}
	if !CanSubmit(*asg, actor.ID) {
		return Submission{}, core.NewValidationError(ErrSubmissionExists,
			core.FieldError{Field: "studentId", Error: SubmissionConstraint})
	}

	sub := Submission{
		ID:           uuid.New().String(),
		StudentID:    actor.ID,
		AssignmentID: asg.ID,
		Content:      ns.Content,
		SubmittedAt:  nowFunc().UTC(),
	}
	if _, err := svc.repo.AddSubmission(crs.ID, sub); err != nil {
		if errors.Is(err, ErrSubmissionExists) {
			return Submission{}, core.NewValidationError(err,
				core.FieldError{Field: "studentId", Error: SubmissionConstraint})
		}
		return Submission{}, err
	}
	return sub, nil
}

// GradeSubmission attaches a grade and optional feedback to the
// submission, produces the Grade record and raises a grade_published
// event. Only teachers and admins may grade, and the value must lie
// within [0, maxPoints].
func (svc *Service) GradeSubmission(actor user.User, courseID, assignmentID, submissionID string, value float64, feedback string) (Grade, Warnings, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return Grade{}, nil, err
	}
	if !actor.CanManageCourses() {
		return Grade{}, nil, core.NewUnauthorizedError("only teachers and administrators can grade submissions")
	}

	asg, ok := crs.Assignment(assignmentID)
	if !ok {
		return Grade{}, nil, ErrAssignmentNotFound
	}
	if !GradeInRange(value, asg.MaxPoints) {
		return Grade{}, nil, core.NewValidationError(errors.New("grade out of range"),
			core.FieldError{Field: "value", Error: GradeConstraint})
	}

	var sub *Submission
	for i := range asg.Submissions {
		if asg.Submissions[i].ID == submissionID {
			sub = &asg.Submissions[i]
			break
		}
	}
	if sub == nil {
		return Grade{}, nil, ErrSubmissionNotFound
	}
	if sub.IsGraded() {
		return Grade{}, nil, core.NewValidationError(errors.New("submission already graded"),
			core.FieldError{Field: "submissionId", Error: "a submission can only be graded once"})
	}

	sub.Grade = &value
	sub.Feedback = feedback
	crs.UpdatedAt = nowFunc().UTC()
	if _, err := svc.repo.UpdateCourse(crs); err != nil {
		return Grade{}, nil, err
	}

	grd := Grade{
		ID:           uuid.New().String(),
		Value:        value,
		Feedback:     feedback,
		AssignmentID: asg.ID,
		StudentID:    sub.StudentID,
		GradedBy:     actor.ID,
		GradedAt:     nowFunc().UTC(),
	}
	warns := svc.subjects.For(crs.ID).GradePublished(sub.StudentID, asg.Title, value)
	svc.warn(warns)
	return grd, warns, nil
}

// AddAnnouncement raises an announcement_added event on the course.
// Only the course's teacher or an admin may post announcements.
func (svc *Service) AddAnnouncement(actor user.User, courseID, title, message string) (Warnings, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if !CanModifyCourse(actor, crs) {
		return nil, core.NewUnauthorizedError("only the course teacher or an administrator can post announcements")
	}
	title = core.CleanString(title)
	message = core.CleanString(message)
	if title == "" || message == "" {
		return nil, core.NewValidationError(errors.New("announcement title and message are required"),
			core.FieldError{Field: "title", Error: "this field is required"})
	}

	warns := svc.subjects.For(crs.ID).AnnouncementAdded(title, message)
	svc.warn(warns)
	return warns, nil
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) QueryByTeacher(teacherID string) ([]Course, error) {
	return svc.repo.QueryCoursesByTeacher(teacherID)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteCoursesByID(ids...)
}

func (svc *Service) warn(warns Warnings) {
	for _, w := range warns {
		svc.logger.Warn("observer delivery failed", w)
	}
}
