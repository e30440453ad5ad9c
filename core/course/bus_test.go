package course

import (
	"errors"
	"sync"
	"testing"
)

type recordingObserver struct {
	name   string
	events []Event
	err    error
	log    *[]string // shared delivery log, records order across observers
}

func (o *recordingObserver) Update(e Event) error {
	o.events = append(o.events, e)
	if o.log != nil {
		*o.log = append(*o.log, o.name)
	}
	return o.err
}

func TestSubject_Register_idempotent(t *testing.T) {
	subj := NewSubject("c1")
	obs := &recordingObserver{name: "o1"}

	subj.Register(obs)
	subj.Register(obs) // no duplicate entry

	if warns := subj.AssignmentAdded("Essay 1"); warns != nil {
		t.Fatalf("Notify() warnings = %v", warns)
	}
	if len(obs.events) != 1 {
		t.Errorf("observer received %d events, want 1", len(obs.events))
	}
}

func TestSubject_Unregister(t *testing.T) {
	subj := NewSubject("c1")
	obs := &recordingObserver{name: "o1"}

	subj.Unregister(obs) // no-op if absent

	subj.Register(obs)
	subj.Unregister(obs)
	subj.AnnouncementAdded("hi", "there")

	if len(obs.events) != 0 {
		t.Errorf("unregistered observer received %d events, want 0", len(obs.events))
	}
}

func TestSubject_Notify_registrationOrder(t *testing.T) {
	subj := NewSubject("c1")
	var deliveryLog []string
	o1 := &recordingObserver{name: "o1", log: &deliveryLog}
	o2 := &recordingObserver{name: "o2", log: &deliveryLog}
	o3 := &recordingObserver{name: "o3", log: &deliveryLog}
	subj.Register(o1)
	subj.Register(o2)
	subj.Register(o3)

	subj.GradePublished("stud1", "Essay 1", 15)

	want := []string{"o1", "o2", "o3"}
	if len(deliveryLog) != len(want) {
		t.Fatalf("delivered to %d observers, want %d", len(deliveryLog), len(want))
	}
	for i, name := range want {
		if deliveryLog[i] != name {
			t.Errorf("delivery[%d] = %s, want %s", i, deliveryLog[i], name)
		}
	}
}

func TestSubject_Notify_failureIsolation(t *testing.T) {
	subj := NewSubject("c1")
	boom := errors.New("boom")
	o1 := &recordingObserver{name: "o1", err: boom}
	o2 := &recordingObserver{name: "o2"}
	subj.Register(o1)
	subj.Register(o2)

	warns := subj.AssignmentAdded("Essay 1")

	if len(warns) != 1 {
		t.Fatalf("Notify() warnings = %v, want 1 warning", warns)
	}
	if !errors.Is(warns[0], boom) {
		t.Errorf("warning = %v, want wrapped %v", warns[0], boom)
	}
	// the failing observer did not prevent delivery to the next one
	if len(o2.events) != 1 {
		t.Errorf("second observer received %d events, want 1", len(o2.events))
	}
}

func TestSubject_Notify_eventPayloads(t *testing.T) {
	subj := NewSubject("c1")
	obs := &recordingObserver{name: "o1"}
	subj.Register(obs)

	subj.AssignmentAdded("Essay 1")
	subj.GradePublished("stud1", "Essay 1", 15)
	subj.AnnouncementAdded("Exam", "Next week")

	if len(obs.events) != 3 {
		t.Fatalf("observer received %d events, want 3", len(obs.events))
	}
	asgEvt, grdEvt, annEvt := obs.events[0], obs.events[1], obs.events[2]

	if asgEvt.Kind != EventAssignmentAdded || asgEvt.CourseID != "c1" || asgEvt.AssignmentTitle != "Essay 1" {
		t.Errorf("unexpected assignment_added payload: %+v", asgEvt)
	}
	if grdEvt.Kind != EventGradePublished || grdEvt.StudentID != "stud1" || grdEvt.Grade != 15 || grdEvt.AssignmentTitle != "Essay 1" {
		t.Errorf("unexpected grade_published payload: %+v", grdEvt)
	}
	if annEvt.Kind != EventAnnouncementAdded || annEvt.Title != "Exam" || annEvt.Message != "Next week" {
		t.Errorf("unexpected announcement_added payload: %+v", annEvt)
	}
}

func TestSubject_concurrentRegisterAndNotify(t *testing.T) {
	subj := NewSubject("c1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			subj.Register(&recordingObserver{name: "o"})
		}()
		go func() {
			defer wg.Done()
			subj.AnnouncementAdded("hi", "there")
		}()
	}
	wg.Wait()
}

func TestSubjectRegistry_For(t *testing.T) {
	reg := NewSubjectRegistry()

	s1 := reg.For("c1")
	if s1 != reg.For("c1") {
		t.Error("For() returned a different subject for the same course")
	}
	if s1 == reg.For("c2") {
		t.Error("For() returned the same subject for different courses")
	}
	if s1.CourseID() != "c1" {
		t.Errorf("CourseID() = %s, want c1", s1.CourseID())
	}
}
