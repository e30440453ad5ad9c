package inmemdb

import (
	"sync"

	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/notification"
	"github.com/trezcool/shule/core/user"
)

type (
	DB struct {
		user         *userTable
		course       *courseTable
		notification *notificationTable
	}

	userTable struct {
		table map[string]*user.User
		mutex sync.RWMutex
	}

	courseTable struct {
		table map[string]*course.Course
		mutex sync.RWMutex
	}

	notificationTable struct {
		table map[string]*notification.Notification
		seq   int // insertion order, for stable newest-first queries
		order map[string]int
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:         &userTable{table: make(map[string]*user.User)},
		course:       &courseTable{table: make(map[string]*course.Course)},
		notification: &notificationTable{table: make(map[string]*notification.Notification), order: make(map[string]int)},
	}
	return db, nil
}
