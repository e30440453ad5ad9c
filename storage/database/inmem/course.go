package inmemdb

import (
	"sort"

	"github.com/trezcool/shule/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

// cloneCourse deep-copies a course aggregate so callers can never mutate
// stored state without going through the repository.
func cloneCourse(c course.Course) course.Course {
	cp := c
	cp.Modules = make([]course.Module, len(c.Modules))
	for i, mod := range c.Modules {
		modCp := mod
		modCp.Materials = append([]course.Material(nil), mod.Materials...)
		modCp.Assignments = make([]course.Assignment, len(mod.Assignments))
		for j, asg := range mod.Assignments {
			asgCp := asg
			asgCp.Submissions = make([]course.Submission, len(asg.Submissions))
			for k, sub := range asg.Submissions {
				subCp := sub
				if sub.Grade != nil {
					grade := *sub.Grade
					subCp.Grade = &grade
				}
				asgCp.Submissions[k] = subCp
			}
			modCp.Assignments[j] = asgCp
		}
		cp.Modules[i] = modCp
	}
	return cp
}

func (repo *courseRepository) query() []course.Course {
	courses := make([]course.Course, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		courses = append(courses, cloneCourse(*c))
	}
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].CreatedAt.Equal(courses[j].CreatedAt) {
			return courses[i].ID < courses[j].ID
		}
		return courses[i].CreatedAt.Before(courses[j].CreatedAt)
	})
	return courses
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	stored := cloneCourse(c)
	repo.db.table[c.ID] = &stored
	return c, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.query(), nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return cloneCourse(*c), nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) QueryCoursesByTeacher(teacherID string) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var courses []course.Course
	for _, c := range repo.query() {
		if c.TeacherID == teacherID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(c course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[c.ID]; !ok {
		return course.Course{}, course.ErrNotFound
	}
	stored := cloneCourse(c)
	repo.db.table[c.ID] = &stored
	return c, nil
}

// AddSubmission checks submission uniqueness and appends under a single
// write lock: two concurrent submissions by the same student cannot both
// pass the check.
func (repo *courseRepository) AddSubmission(courseID string, sub course.Submission) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	c, ok := repo.db.table[courseID]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	asg, ok := c.Assignment(sub.AssignmentID)
	if !ok {
		return course.Course{}, course.ErrAssignmentNotFound
	}
	if !course.CanSubmit(*asg, sub.StudentID) {
		return course.Course{}, course.ErrSubmissionExists
	}
	asg.Submissions = append(asg.Submissions, sub)
	c.UpdatedAt = sub.SubmittedAt
	return cloneCourse(*c), nil
}

func (repo *courseRepository) DeleteCoursesByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
