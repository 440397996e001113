// Package store contém os contêineres de estado do núcleo do cliente:
// sessão, peleas, apostas, notificações, referidos e transações. Todos
// seguem o mesmo contrato: {dados, loading, err}, substituição integral
// dos dados a cada fetch, e last-writer-wins entre requisições
// sobrepostas via número de sequência monotônico.
package store

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrNotAuthenticated sinaliza ação que exige sessão autenticada.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidBet sinaliza parâmetros de aposta fora do domínio
	// (amount/odds não positivos ou galo fora de {1,2}).
	ErrInvalidBet = errors.New("invalid bet parameters")
)

// state carrega os campos comuns do contrato genérico de store.
// O mutex protege também os campos de dados do store que o embute.
type state struct {
	mu   sync.Mutex
	name string
	log  *zap.Logger

	seq     uint64 // última requisição emitida
	loading bool
	err     error
}

func newState(name string, log *zap.Logger) state {
	if log == nil {
		log = zap.NewNop()
	}
	return state{name: name, log: log.With(zap.String("store", name))}
}

// begin abre uma nova requisição: loading=true, err=nil, e devolve o
// número de sequência que identifica esta requisição.
func (s *state) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	s.err = nil
	return s.seq
}

// settle aplica o desfecho de uma requisição somente se ela ainda for a
// mais recente emitida. Respostas obsoletas são descartadas por inteiro
// (dados, erro e loading): last-writer-wins sobre a sequência emitida.
func (s *state) settle(seq uint64, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		staleResponses.WithLabelValues(s.name).Inc()
		s.log.Debug("stale response discarded", zap.Uint64("seq", seq), zap.Uint64("latest", s.seq))
		return nil
	}
	s.loading = false
	s.err = fn()
	if s.err != nil {
		actionsTotal.WithLabelValues(s.name, "error").Inc()
		s.log.Warn("action failed", zap.Error(s.err))
	} else {
		actionsTotal.WithLabelValues(s.name, "ok").Inc()
	}
	return s.err
}

// clearError limpa apenas o erro, sem tocar no restante do estado.
func (s *state) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}
