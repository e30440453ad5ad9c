package notifiersvc

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/notification"
)

// TextMessageService is the third-party SMS gateway interface being adapted.
type TextMessageService interface {
	SendTextMessage(phoneNumber, message string) error
}

// PhoneResolver maps a user id to the phone number SMS should go to.
type PhoneResolver func(userID string) (string, error)

// smsSender adapts an SMS gateway to the notification.Sender contract.
type smsSender struct {
	gateway      TextMessageService
	resolvePhone PhoneResolver
}

var _ notification.Sender = (*smsSender)(nil)

func NewSMSSender(gateway TextMessageService, resolvePhone PhoneResolver) notification.Sender {
	return &smsSender{gateway: gateway, resolvePhone: resolvePhone}
}

func (svc *smsSender) Send(userID, title, message string, typ notification.Type) (notification.Notification, error) {
	phone, err := svc.resolvePhone(userID)
	if err != nil {
		return notification.Notification{}, errors.Wrap(err, "resolving recipient phone")
	}
	if err := svc.gateway.SendTextMessage(phone, title+": "+message); err != nil {
		return notification.Notification{}, errors.Wrap(err, "sending SMS")
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
