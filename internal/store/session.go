package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/internal/session/vault"
	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Session é a máquina de estados da sessão: anonymous → authenticated
// via login/registro, de volta a anonymous via logout. O User é a única
// entidade durável do cliente; toda transição de memória acontece na
// mesma seção crítica que a escrita/remoção no vault.
type Session struct {
	st      state
	backend backend.Client
	vault   vault.Vault

	user          domain.User
	authenticated bool
}

type SessionSnapshot struct {
	User          *domain.User
	Authenticated bool
	Loading       bool
	Err           error
}

func NewSession(b backend.Client, v vault.Vault, log *zap.Logger) *Session {
	return &Session{st: newState("session", log), backend: b, vault: v}
}

// Rehydrate recarrega o registro durável no boot, antes de qualquer
// outro store agir. Registro corrompido é logado e tratado como sessão
// ausente, nunca como erro fatal.
func (s *Session) Rehydrate(ctx context.Context) {
	u, ok, err := s.vault.Load(ctx)
	if err != nil {
		s.st.log.Warn("session rehydrate", zap.Error(err))
	}
	if !ok {
		return
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.user = u
	s.authenticated = true
	s.st.log.Info("session rehydrated", zap.Int64("user_id", u.ID))
}

func (s *Session) Login(ctx context.Context, username, password string) error {
	seq := s.st.begin()
	u, cerr := s.backend.Login(ctx, username, password)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		// memória e vault transicionam juntos: se a escrita durável
		// falha, a sessão continua anonymous
		if err := s.vault.Save(ctx, u); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		s.user = u
		s.authenticated = true
		return nil
	})
}

func (s *Session) Register(ctx context.Context, username, phone, password string) error {
	seq := s.st.begin()
	u, cerr := s.backend.Register(ctx, username, phone, password)
	return s.st.settle(seq, func() error {
		if cerr != nil {
			return cerr
		}
		if err := s.vault.Save(ctx, u); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		s.user = u
		s.authenticated = true
		return nil
	})
}

// Logout é síncrono: nenhuma chamada de rede, apenas limpeza da memória
// e do registro durável. Se a remoção durável falhar a sessão permanece
// autenticada, para nunca divergir memória e vault.
func (s *Session) Logout(ctx context.Context) error {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if err := s.vault.Clear(ctx); err != nil {
		s.st.err = fmt.Errorf("clear session: %w", err)
		return s.st.err
	}
	s.user = domain.User{}
	s.authenticated = false
	s.st.err = nil
	return nil
}

func (s *Session) ClearError() { s.st.clearError() }

// UserID implementa a interface consumida pelo store de apostas.
func (s *Session) UserID() (int64, bool) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.authenticated {
		return 0, false
	}
	return s.user.ID, true
}

func (s *Session) Snapshot() SessionSnapshot {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	snap := SessionSnapshot{
		Authenticated: s.authenticated,
		Loading:       s.st.loading,
		Err:           s.st.err,
	}
	if s.authenticated {
		u := s.user
		snap.User = &u
	}
	return snap
}
