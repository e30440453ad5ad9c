package main

import (
	"log"
	"os"
	"testing"

	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/user"
	logsvc "github.com/trezcool/shule/services/logger"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
	testutil "github.com/trezcool/shule/tests"
)

func setup(t *testing.T) (*commandLine, user.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	usrRepo := inmemdb.NewUserRepository(db)
	std := logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
	std.Enable(false)

	cli := &commandLine{
		usrSvc: user.NewService(usrRepo),
		crsSvc: course.NewService(inmemdb.NewCourseRepository(db), std),
	}
	return cli, usrRepo
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_addUser(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no subcommand", args: []string{}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
		{name: "missing name", args: []string{"adduser", "-email", "t@test.cd"}, wantErr: errHelp},
		{name: "missing email", args: []string{"adduser", "-name", "Teach"}, wantErr: errHelp},
		{name: "bad role", args: []string{"adduser", "-name", "Teach", "-email", "t@test.cd", "-role", "boss"},
			wantErrStr: "role: role must be one of: student, teacher, admin"},
		{name: "ok", args: []string{"adduser", "-name", "Teach", "-email", "t@test.cd", "-role", "teacher"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(append([]string{"admin"}, tt.args...))
			checkCLIErr(t, err, tt)
		})
	}
}

func Test_commandLine_addCourse(t *testing.T) {
	cli, usrRepo := setup(t)
	teacher := testutil.CreateUser(t, usrRepo, "Teach", "teach@test.cd", user.RoleTeacher)
	student := testutil.CreateUser(t, usrRepo, "Stud", "stud@test.cd", user.RoleStudent)

	tests := []cliTest{
		{name: "missing flags", args: []string{"addcourse", "-teacher", teacher.Email}, wantErr: errHelp},
		{name: "unknown teacher", args: []string{"addcourse", "-teacher", "ghost@test.cd", "-title", "Intro to Go", "-description", "A practical introduction."},
			wantErr: user.ErrNotFound},
		{name: "student cannot own a course", args: []string{"addcourse", "-teacher", student.Email, "-title", "Intro to Go", "-description", "A practical introduction."},
			wantErrStr: "only teachers and administrators can create courses"},
		{name: "ok", args: []string{"addcourse", "-teacher", teacher.Email, "-title", "Intro to Go", "-description", "A practical introduction."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(append([]string{"admin"}, tt.args...))
			checkCLIErr(t, err, tt)
		})
	}
}

func checkCLIErr(t *testing.T, err error, tt cliTest) {
	t.Helper()

	if tt.wantErr != nil {
		if err != tt.wantErr {
			t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
		}
		return
	}
	if tt.wantErrStr != "" {
		if err == nil || err.Error() != tt.wantErrStr {
			t.Errorf("run() error = %v, wantErrStr %q", err, tt.wantErrStr)
		}
		return
	}
	if err != nil {
		t.Errorf("run() unexpected error: %v", err)
	}
}
