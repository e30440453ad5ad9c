package notifiersvc

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/notification"
)

// PushService is the third-party push-notification interface being adapted.
type PushService interface {
	SendPush(deviceToken, title, body string) error
}

// DeviceResolver maps a user id to the device tokens push should go to.
type DeviceResolver func(userID string) ([]string, error)

// pushSender adapts a push provider to the notification.Sender contract.
type pushSender struct {
	provider       PushService
	resolveDevices DeviceResolver
}

var _ notification.Sender = (*pushSender)(nil)

func NewPushSender(provider PushService, resolveDevices DeviceResolver) notification.Sender {
	return &pushSender{provider: provider, resolveDevices: resolveDevices}
}

func (svc *pushSender) Send(userID, title, message string, typ notification.Type) (notification.Notification, error) {
	tokens, err := svc.resolveDevices(userID)
	if err != nil {
		return notification.Notification{}, errors.Wrap(err, "resolving recipient devices")
	}
	for _, token := range tokens {
		if err := svc.provider.SendPush(token, title, message); err != nil {
			return notification.Notification{}, errors.Wrap(err, "sending push")
		}
	}
	return notification.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}, nil
}
