package notifiersvc

import (
	"net/mail"
	"testing"

	pkgerrors "github.com/pkg/errors"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/trezcool/shule/core/notification"
	"github.com/trezcool/shule/core/user"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

func TestEmailSender_prepare(t *testing.T) {
	sender := &emailSender{
		from:       sgmail.NewEmail("Shule", "noreply@localhost"),
		subjPrefix: "[Shule] ",
	}

	m := sender.prepare(mail.Address{Name: "Jane Student", Address: "jstudent@shule.cd"}, "Grade Posted", "Your grade is in.")

	if m.From.Address != "noreply@localhost" {
		t.Errorf("From = %s, want noreply@localhost", m.From.Address)
	}
	if len(m.Personalizations) != 1 {
		t.Fatalf("got %d personalizations, want 1", len(m.Personalizations))
	}
	p := m.Personalizations[0]
	if p.Subject != "[Shule] Grade Posted" {
		t.Errorf("Subject = %q, want %q", p.Subject, "[Shule] Grade Posted")
	}
	if len(p.To) != 1 || p.To[0].Address != "jstudent@shule.cd" || p.To[0].Name != "Jane Student" {
		t.Errorf("unexpected recipients: %+v", p.To)
	}
	if len(m.Content) != 1 || m.Content[0].Type != "text/plain" || m.Content[0].Value != "Your grade is in." {
		t.Errorf("unexpected content: %+v", m.Content)
	}
}

func TestEmailSender_Send_unknownRecipient(t *testing.T) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	sender := NewEmailSender(user.NewService(inmemdb.NewUserRepository(db)))

	_, err = sender.Send("nope", "Hi", "there", notification.TypeSystem)
	if pkgerrors.Cause(err) != user.ErrNotFound {
		t.Errorf("Send() error = %v, want caused by %v", err, user.ErrNotFound)
	}
}
