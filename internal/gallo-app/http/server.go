package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/internal/gallo-app/dto"
	"github.com/radieske/gallo-bet-platform/internal/store"
)

// Server é a fachada REST do núcleo: uma rota por ação de store. A
// camada de visual consome estes snapshots; toda regra fica nos stores.
type Server struct {
	log           *zap.Logger
	session       *store.Session
	matches       *store.Matches
	bets          *store.Bets
	notifications *store.Notifications
	referrals     *store.Referrals
	transactions  *store.Transactions
}

func NewServer(
	log *zap.Logger,
	session *store.Session,
	matches *store.Matches,
	bets *store.Bets,
	notifications *store.Notifications,
	referrals *store.Referrals,
	transactions *store.Transactions,
) *Server {
	return &Server{
		log:           log,
		session:       session,
		matches:       matches,
		bets:          bets,
		notifications: notifications,
		referrals:     referrals,
		transactions:  transactions,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/v1/session/login", s.login)
	r.Post("/v1/session/register", s.register)
	r.Post("/v1/session/logout", s.logout)
	r.Get("/v1/session", s.getSession)

	r.Get("/v1/matches", s.getMatches)

	r.Get("/v1/bets", s.getBets)
	r.Post("/v1/bets", s.placeBet)

	r.Get("/v1/notifications", s.getNotifications)
	r.Post("/v1/notifications/{id}/read", s.markAsRead)
	r.Post("/v1/notifications/read-all", s.markAllAsRead)

	r.Get("/v1/referrals", s.getReferrals)
	r.Get("/v1/transactions", s.getTransactions)

	return r
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	// a visual limpa o erro antes de cada tentativa; a fachada repete
	s.session.ClearError()
	if err := s.session.Login(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}
	s.writeSession(w)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	s.session.ClearError()
	if err := s.session.Register(r.Context(), req.Username, req.Phone, req.Password); err != nil {
		writeError(w, err)
		return
	}
	s.writeSession(w)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	s.writeSession(w)
}

func (s *Server) getSession(w http.ResponseWriter, _ *http.Request) {
	s.writeSession(w)
}

func (s *Server) writeSession(w http.ResponseWriter) {
	snap := s.session.Snapshot()
	writeJSON(w, http.StatusOK, dto.SessionResponse{
		User:            snap.User,
		IsAuthenticated: snap.Authenticated,
		IsLoading:       snap.Loading,
		Error:           dto.ErrMessage(snap.Err),
	})
}

func (s *Server) getMatches(w http.ResponseWriter, r *http.Request) {
	_ = s.matches.Fetch(r.Context())
	snap := s.matches.Snapshot()
	writeJSON(w, statusFor(snap.Err), dto.MatchesResponse{
		Matches:   snap.Matches,
		IsLoading: snap.Loading,
		Error:     dto.ErrMessage(snap.Err),
	})
}

func (s *Server) getBets(w http.ResponseWriter, r *http.Request) {
	_ = s.bets.Fetch(r.Context())
	snap := s.bets.Snapshot()
	writeJSON(w, statusFor(snap.Err), dto.BetsResponse{
		Bets:      snap.Bets,
		IsLoading: snap.Loading,
		Error:     dto.ErrMessage(snap.Err),
	})
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	placed, err := s.bets.PlaceBet(r.Context(), req.MatchID, req.Amount, req.SelectedCock, req.Odds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.PlaceBetResponse{
		Bet:    placed,
		Status: "PENDING_CONFIRMATION",
	})
}

func (s *Server) getNotifications(w http.ResponseWriter, r *http.Request) {
	_ = s.notifications.Fetch(r.Context())
	s.writeNotifications(w)
}

func (s *Server) markAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	_ = s.notifications.MarkAsRead(id)
	s.writeNotifications(w)
}

func (s *Server) markAllAsRead(w http.ResponseWriter, _ *http.Request) {
	_ = s.notifications.MarkAllAsRead()
	s.writeNotifications(w)
}

func (s *Server) writeNotifications(w http.ResponseWriter) {
	snap := s.notifications.Snapshot()
	writeJSON(w, statusFor(snap.Err), dto.NotificationsResponse{
		Notifications: snap.Notifications,
		UnreadCount:   snap.UnreadCount,
		IsLoading:     snap.Loading,
		Error:         dto.ErrMessage(snap.Err),
	})
}

func (s *Server) getReferrals(w http.ResponseWriter, r *http.Request) {
	_ = s.referrals.Fetch(r.Context())
	snap := s.referrals.Snapshot()
	writeJSON(w, statusFor(snap.Err), dto.ReferralsResponse{
		Referrals:     snap.Referrals,
		TotalEarnings: snap.TotalEarnings,
		IsLoading:     snap.Loading,
		Error:         dto.ErrMessage(snap.Err),
	})
}

func (s *Server) getTransactions(w http.ResponseWriter, r *http.Request) {
	_ = s.transactions.Fetch(r.Context())
	snap := s.transactions.Snapshot()
	writeJSON(w, statusFor(snap.Err), dto.TransactionsResponse{
		Transactions: snap.Transactions,
		IsLoading:    snap.Loading,
		Error:        dto.ErrMessage(snap.Err),
	})
}

// statusFor traduz o erro de snapshot em status HTTP; snapshot sem erro
// sai 200 mesmo com dados antigos (contrato: dado anterior sobrevive).
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, store.ErrNotAuthenticated), errors.Is(err, backend.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, backend.ErrIncompleteRegistration), errors.Is(err, store.ErrInvalidBet):
		return http.StatusBadRequest
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, backend.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
