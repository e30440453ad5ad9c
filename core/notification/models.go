package notification

import (
	"time"
)

// Notification types
const (
	TypeAnnouncement Type = "announcement"
	TypeAssignment   Type = "assignment"
	TypeGrade        Type = "grade"
	TypeSystem       Type = "system"
)

type (
	Type string

	// Notification is the durable artifact produced by an observer
	// reacting to a domain event.
	Notification struct {
		ID        string    `json:"id"`
		UserID    string    `json:"userId"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		Type      Type      `json:"type"`
		IsRead    bool      `json:"isRead"`
		CreatedAt time.Time `json:"createdAt"` // UTC
	}

	// Sender is any external collaborator that can push a prepared
	// notification over a concrete transport (email, SMS, push...).
	// The core is agnostic to which one is wired in.
	Sender interface {
		Send(userID, title, message string, typ Type) (Notification, error)
	}
)

// Valid reports whether t is one of the known notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeAnnouncement, TypeAssignment, TypeGrade, TypeSystem:
		return true
	}
	return false
}
