package simulator

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/gallo-bet-platform/internal/backend"
	"github.com/radieske/gallo-bet-platform/internal/backend-simulator/dto"
	"github.com/radieske/gallo-bet-platform/internal/backend/mock"
)

// Server expõe o backend stub por HTTP: os endpoints /api/* que o app
// consome e o /backend/confirm usado pelo bet-confirmation-worker.
// Toda a lógica vem do mock in-process; aqui é só superfície REST.
type Server struct {
	log  *zap.Logger
	mock *mock.Client
}

func NewServer(log *zap.Logger, m *mock.Client) *Server {
	return &Server{log: log, mock: m}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", s.login)                 // POST
	mux.HandleFunc("/api/register", s.register)           // POST
	mux.HandleFunc("/api/matches", s.matches)             // GET
	mux.HandleFunc("/api/bets", s.bets)                   // GET ?userId=...
	mux.HandleFunc("/api/notifications", s.notifications) // GET ?userId=...
	mux.HandleFunc("/api/referrals", s.referrals)         // GET ?userId=...
	mux.HandleFunc("/api/transactions", s.transactions)   // GET ?userId=...
	mux.HandleFunc("/backend/confirm", s.confirm)         // POST
	return mux
}

type credentials struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	u, err := s.mock.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("login ok", zap.String("username", req.Username))
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	u, err := s.mock.Register(r.Context(), req.Username, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrIncompleteRegistration) {
			http.Error(w, "incomplete registration data", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("register ok", zap.String("username", req.Username), zap.Int64("user_id", u.ID))
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) matches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ms, err := s.mock.FetchMatches(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ms)
}

func (s *Server) bets(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	bs, err := s.mock.FetchUserBets(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

func (s *Server) notifications(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	ns, err := s.mock.FetchNotifications(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ns)
}

func (s *Server) referrals(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	rs, err := s.mock.FetchReferrals(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	ts, err := s.mock.FetchTransactions(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

// confirm decide o destino de uma aposta otimista: 80% confirmada.
func (s *Server) confirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.ConfirmReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp := dto.ConfirmResp{
		Status:      dto.StatusConfirmed,
		ProviderRef: "SUP-" + uuid.NewString()[:8],
	}
	if rand.Intn(100) >= 80 {
		resp.Status = dto.StatusRejected
		resp.Reason = "backend_reject_mock"
	}
	s.log.Info("bet confirm decided",
		zap.Int64("bet_id", req.BetID),
		zap.String("status", resp.Status),
	)
	writeJSON(w, http.StatusOK, resp)
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return 0, false
	}
	uid, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || uid <= 0 {
		http.Error(w, "userId required", http.StatusBadRequest)
		return 0, false
	}
	return uid, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
