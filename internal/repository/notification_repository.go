package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// NotificationRepository stores notification records.  Only the
// notification coordinator creates them; engines never read them back.
type NotificationRepository interface {
	Create(n model.Notification) (model.Notification, error)
	Save(n model.Notification) (model.Notification, error)
	FindByID(id string) (model.Notification, error)
	// FindByUserID returns the user's notifications, newest first.
	FindByUserID(userID string) []model.Notification
}

type notificationRepo struct {
	mu   sync.RWMutex
	byID map[string]model.Notification
	gen  IDGenerator
}

// NewNotificationRepository returns an empty in-memory notification
// store.
func NewNotificationRepository(gen IDGenerator) NotificationRepository {
	return &notificationRepo{byID: make(map[string]model.Notification), gen: gen}
}

func (r *notificationRepo) Create(n model.Notification) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.gen.NextID("notif")
	n.CreatedAt = time.Now().UTC()
	r.byID[n.ID] = n
	return n, nil
}

func (r *notificationRepo) Save(n model.Notification) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[n.ID]; !ok {
		return model.Notification{}, ErrNotFound
	}
	r.byID[n.ID] = n
	return n, nil
}

func (r *notificationRepo) FindByID(id string) (model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byID[id]
	if !ok {
		return model.Notification{}, ErrNotFound
	}
	return n, nil
}

func (r *notificationRepo) FindByUserID(userID string) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Notification
	for _, n := range r.byID {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
