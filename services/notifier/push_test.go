package notifiersvc

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/shule/core/notification"
)

type pushProviderMock struct {
	sent []string // "token | title | body"
	err  error
}

func (m *pushProviderMock) SendPush(token, title, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, token+" | "+title+" | "+body)
	return nil
}

func TestPushSender_Send(t *testing.T) {
	devicesFor := func(userID string) ([]string, error) {
		if userID == "u1" {
			return []string{"tok-phone", "tok-tablet"}, nil
		}
		return nil, errors.New("no registered devices")
	}

	t.Run("delivers to every registered device", func(t *testing.T) {
		provider := &pushProviderMock{}
		sender := NewPushSender(provider, devicesFor)

		notif, err := sender.Send("u1", "New Assignment", "Essay 1 is out.", notification.TypeAssignment)
		if err != nil {
			t.Fatalf("Send() failed: %v", err)
		}
		if notif.UserID != "u1" || notif.Type != notification.TypeAssignment {
			t.Errorf("unexpected notification: %+v", notif)
		}
		if len(provider.sent) != 2 {
			t.Fatalf("provider sent %d pushes, want 2", len(provider.sent))
		}
		if want := "tok-phone | New Assignment | Essay 1 is out."; provider.sent[0] != want {
			t.Errorf("sent %q, want %q", provider.sent[0], want)
		}
	})

	t.Run("unresolvable recipient", func(t *testing.T) {
		provider := &pushProviderMock{}
		sender := NewPushSender(provider, devicesFor)

		if _, err := sender.Send("u2", "Hi", "there", notification.TypeSystem); err == nil {
			t.Fatal("Send() succeeded for an unresolvable recipient")
		}
		if len(provider.sent) != 0 {
			t.Errorf("provider sent %d pushes, want 0", len(provider.sent))
		}
	})

	t.Run("provider failure is surfaced", func(t *testing.T) {
		boom := errors.New("provider down")
		sender := NewPushSender(&pushProviderMock{err: boom}, devicesFor)

		_, err := sender.Send("u1", "Hi", "there", notification.TypeSystem)
		if pkgerrors.Cause(err) != boom {
			t.Errorf("Send() error = %v, want caused by %v", err, boom)
		}
	})
}
