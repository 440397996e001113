package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Notifications guarda a lista de notificações e o contador de não
// lidas. Invariante: unread == quantidade de entradas com read=false,
// recalculado após toda mutação.
type Notifications struct {
	st      state
	backend backend.Client
	session CurrentUser

	notifications []domain.Notification
	unread        int
}

type NotificationsSnapshot struct {
	Notifications []domain.Notification
	UnreadCount   int
	Loading       bool
	Err           error
}

func NewNotifications(b backend.Client, session CurrentUser, log *zap.Logger) *Notifications {
	return &Notifications{st: newState("notifications", log), backend: b, session: session}
}

func (s *Notifications) Fetch(ctx context.Context) error {
	uid, ok := s.session.UserID()
	if !ok {
		seq := s.st.begin()
		return s.st.settle(seq, func() error { return ErrNotAuthenticated })
	}
	seq := s.st.begin()
	ns, cerr := s.backend.FetchNotifications(ctx, uid)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		s.notifications = ns
		s.unread = countUnread(ns)
		return nil
	})
}

// MarkAsRead marca uma notificação como lida. Id inexistente não é erro:
// apenas loga e segue (a lista pode ter sido substituída por um fetch).
func (s *Notifications) MarkAsRead(id int64) error {
	seq := s.st.begin()
	return s.st.settle(seq, func() error {
		found := false
		for i := range s.notifications {
			if s.notifications[i].ID == id {
				s.notifications[i].Read = true
				found = true
				break
			}
		}
		if !found {
			s.st.log.Warn("mark as read: unknown notification", zap.Int64("id", id))
		}
		s.unread = countUnread(s.notifications)
		return nil
	})
}

// MarkAllAsRead é idempotente: aplicar duas vezes dá o mesmo estado.
func (s *Notifications) MarkAllAsRead() error {
	seq := s.st.begin()
	return s.st.settle(seq, func() error {
		for i := range s.notifications {
			s.notifications[i].Read = true
		}
		s.unread = 0
		return nil
	})
}

func (s *Notifications) ClearError() { s.st.clearError() }

func (s *Notifications) Snapshot() NotificationsSnapshot {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return NotificationsSnapshot{
		Notifications: out,
		UnreadCount:   s.unread,
		Loading:       s.st.loading,
		Err:           s.st.err,
	}
}

func countUnread(ns []domain.Notification) int {
	n := 0
	for _, x := range ns {
		if !x.Read {
			n++
		}
	}
	return n
}
