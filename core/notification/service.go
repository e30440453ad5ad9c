package notification

import (
	"errors"
)

var (
	// errors
	ErrNotFound = errors.New("notification not found")
)

type (
	Repository interface {
		CreateNotification(n Notification) (Notification, error)
		GetNotificationByID(id string) (Notification, error)
		// QueryNotificationsByUser returns the user's notifications, newest first.
		QueryNotificationsByUser(userID string) ([]Notification, error)
		UpdateNotification(n Notification) (Notification, error)
		DeleteNotificationsByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) ForUser(userID string) ([]Notification, error) {
	return svc.repo.QueryNotificationsByUser(userID)
}

func (svc *Service) UnreadCount(userID string) (int, error) {
	notifs, err := svc.repo.QueryNotificationsByUser(userID)
	if err != nil {
		return 0, err
	}
	var n int
	for _, notif := range notifs {
		if !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (svc *Service) MarkRead(id string) (Notification, error) {
	notif, err := svc.repo.GetNotificationByID(id)
	if err != nil {
		return Notification{}, err
	}
	notif.IsRead = true
	return svc.repo.UpdateNotification(notif)
}

func (svc *Service) MarkAllRead(userID string) error {
	notifs, err := svc.repo.QueryNotificationsByUser(userID)
	if err != nil {
		return err
	}
	for _, notif := range notifs {
		if notif.IsRead {
			continue
		}
		notif.IsRead = true
		if _, err := svc.repo.UpdateNotification(notif); err != nil {
			return err
		}
	}
	return nil
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteNotificationsByID(ids...)
}
