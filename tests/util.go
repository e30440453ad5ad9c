package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/user"
)

func CreateUser(t *testing.T, repo user.Repository, name, email string, role user.Role) user.User {
	t.Helper()

	usr, err := user.New(name, email, role)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	usr, err = repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(t *testing.T, repo course.Repository, teacher user.User, title, description string) course.Course {
	t.Helper()

	now := time.Now().UTC()
	crs := course.Course{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		TeacherID:   teacher.ID,
		Status:      course.StatusDraft,
		Modules:     []course.Module{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	crs, err := repo.CreateCourse(crs)
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

// Diff returns a unified diff of want vs got; empty when equal.
func Diff(t *testing.T, want, got string) string {
	t.Helper()

	if want == got {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("Diff() failed: %v", err)
	}
	return diff
}
