package notifiersvc

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/notification"
)

var (
	SentNotifications = make([]notification.Notification, 0)
	mu                sync.Mutex
)

// consoleSender writes notifications to the console; useful in DEV and in tests.
type consoleSender struct {
	appName       string
	disableOutput bool
}

var _ notification.Sender = (*consoleSender)(nil)

func NewConsoleSender() notification.Sender {
	return &consoleSender{appName: core.Conf.AppName}
}

func (svc *consoleSender) Send(userID, title, message string, typ notification.Type) (notification.Notification, error) {
	notif := notification.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}

	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "[%s] %s notification\r\n", svc.appName, typ)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", userID)
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", notif.CreatedAt.Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", title)
	_, _ = fmt.Fprintf(body, "\r\n%s\r\n", message)
	if !svc.disableOutput {
		log.Println(body.String())
	}

	mu.Lock()
	SentNotifications = append(SentNotifications, notif)
	mu.Unlock()
	return notif, nil
}

type consoleSenderMock struct {
	consoleSender
}

func NewConsoleSenderMock() notification.Sender {
	return &consoleSenderMock{
		consoleSender: consoleSender{
			appName:       core.Conf.AppName,
			disableOutput: true,
		},
	}
}

// ClearSentNotifications resets the recorded notifications between tests.
func ClearSentNotifications() {
	mu.Lock()
	SentNotifications = SentNotifications[:0]
	mu.Unlock()
}
