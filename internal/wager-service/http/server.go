package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/lightning-wager-poc/internal/wager-service/dto"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/ledger"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/lnbits"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/service"
	"github.com/radieske/lightning-wager-poc/internal/wager-service/ws"
	"github.com/radieske/lightning-wager-poc/pkg/contracts/events"
)

// Publisher publica eventos de aposta no Kafka (fire-and-forget).
type Publisher interface {
	PublishWagerPlaced(ctx context.Context, e events.WagerPlaced) error
	PublishWagerResolved(ctx context.Context, e events.WagerResolved) error
}

// Broadcaster repassa atividade pro canal Pub/Sub do feed WebSocket.
type Broadcaster interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// BalanceCache guarda saldos consultados no gateway por um TTL curto.
type BalanceCache interface {
	GetBalance(ctx context.Context, walletInkey string) (int64, bool)
	SetBalance(ctx context.Context, walletInkey string, balance int64) error
}

// Server expõe a API pública do wager-service.
// A forma do JSON (snake_case, campo success/message) é contrato com o frontend.
type Server struct {
	Log          *zap.Logger
	Ledger       *ledger.Ledger
	Placement    *service.Placement
	Resolution   *service.Resolution
	Provisioning *service.Provisioning
	Gateway      service.PaymentGateway
	Balances     BalanceCache
	Publ         Publisher
	Feed         Broadcaster
	FeedChannel  string
	Hub          *ws.Hub
}

// Router retorna o roteador HTTP com os endpoints REST + feed WS
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/place-bet", s.placeBet)
	r.Post("/api/resolve-bet", s.resolveBet)
	r.Get("/api/bets", s.getBets)
	r.Post("/api/create-wallet", s.createWallet)
	r.Get("/api/balance/{inkey}", s.getBalance)
	if s.Hub != nil {
		r.Get("/ws", s.Hub.HandleWS)
	}
	return r
}

// placeBet coleta a aposta via gateway e registra o participante no ledger.
// Falhas de negócio voltam com success=false e mensagem específica por etapa.
func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.MatchID == "" || req.SelectedOutcome == "" || req.WalletAdminkey == "" || req.WalletInkey == "" || req.Amount <= 0 || req.Odds <= 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	txID, err := s.Placement.PlaceBet(r.Context(), req.MatchID, req.SelectedOutcome,
		req.WalletAdminkey, req.WalletInkey, req.Odds, req.Amount)
	if err != nil {
		writeJSON(w, http.StatusOK, dto.PlaceBetResponse{Success: false, Message: placementMessage(err)})
		return
	}

	s.broadcast(r.Context(), ws.ActivityUpdate{
		MatchID: req.MatchID,
		Kind:    "wager_placed",
		Payload: map[string]any{"outcome": req.SelectedOutcome, "amount": req.Amount, "odds": req.Odds},
	})
	if err := s.Publ.PublishWagerPlaced(r.Context(), events.WagerPlaced{
		MatchID:       req.MatchID,
		Outcome:       req.SelectedOutcome,
		AmountSats:    req.Amount,
		Odds:          req.Odds,
		TransactionID: txID,
	}); err != nil {
		s.Log.Warn("publish wager_placed", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, dto.PlaceBetResponse{
		Success:       true,
		Message:       fmt.Sprintf("Bet placed on %s", req.SelectedOutcome),
		TransactionID: txID,
	})
}

// placementMessage traduz o erro de colocação pra mensagem vista pelo usuário.
// O caso pago-mas-não-registrado nunca vira mensagem genérica.
func placementMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidWallet):
		return "Invalid wallet credentials"
	case errors.Is(err, service.ErrWalletValidation):
		return "Failed to validate wallet"
	case errors.Is(err, service.ErrInvoiceCreation):
		return "Failed to create invoice"
	case errors.Is(err, service.ErrPaymentFailed):
		return "Payment failed - insufficient funds or network error"
	case errors.Is(err, service.ErrPaidNotRecorded):
		return "Bet was paid but the match closed before it could be recorded - contact support with your transaction id"
	default:
		return "Error placing bet"
	}
}

// resolveBet fecha a partida e paga os vencedores (best-effort, contagem agregada).
func (s *Server) resolveBet(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.MatchID == "" || req.WinningOutcome == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	report, err := s.Resolution.ResolveMatch(r.Context(), req.MatchID, req.WinningOutcome)
	if err != nil {
		msg := "Error resolving bet"
		switch {
		case errors.Is(err, ledger.ErrMatchNotFound):
			msg = "Match not found in active bets"
		case errors.Is(err, ledger.ErrAlreadyResolved):
			msg = "Match is already resolved"
		}
		writeJSON(w, http.StatusOK, dto.ResolveBetResponse{Success: false, Message: msg})
		return
	}

	s.broadcast(r.Context(), ws.ActivityUpdate{
		MatchID: req.MatchID,
		Kind:    "wager_resolved",
		Payload: map[string]any{"winning_outcome": req.WinningOutcome, "payouts": report.Payouts},
	})
	if err := s.Publ.PublishWagerResolved(r.Context(), events.WagerResolved{
		MatchID:        req.MatchID,
		WinningOutcome: req.WinningOutcome,
		Winners:        report.Winners,
		Payouts:        report.Payouts,
	}); err != nil {
		s.Log.Warn("publish wager_resolved", zap.Error(err))
	}

	msg := fmt.Sprintf("Match resolved with %d winners paid", report.Payouts)
	if report.Winners == 0 {
		msg = "No winners to pay out"
	}
	writeJSON(w, http.StatusOK, dto.ResolveBetResponse{Success: true, Message: msg, Payouts: report.Payouts})
}

// getBets retorna o snapshot completo do ledger (mapa vazio em ledger novo)
func (s *Server) getBets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Ledger.Snapshot())
}

// createWallet provisiona conta + carteira no gateway com funding inicial best-effort
func (s *Server) createWallet(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		http.Error(w, "username required", http.StatusBadRequest)
		return
	}

	wallet, funded, err := s.Provisioning.CreateWallet(r.Context(), req.Username)
	if err != nil {
		s.Log.Error("create wallet", zap.Error(err))
		writeJSON(w, http.StatusOK, dto.CreateWalletResponse{Success: false, Message: "Error creating wallet"})
		return
	}

	msg := "Wallet created successfully"
	if !funded {
		msg = "Wallet created but funding failed. Please try again later."
	}
	writeJSON(w, http.StatusOK, dto.CreateWalletResponse{
		Success:  true,
		Message:  msg,
		WalletID: wallet.ID,
		AdminKey: wallet.AdminKey,
		InKey:    wallet.InKey,
	})
}

// getBalance consulta o saldo da carteira, preferencialmente do cache
func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	inkey := chi.URLParam(r, "inkey")

	if bal, ok := s.Balances.GetBalance(r.Context(), inkey); ok {
		writeJSON(w, http.StatusOK, dto.BalanceResponse{Success: true, Balance: &bal})
		return
	}

	info, err := s.Gateway.GetWallet(r.Context(), inkey)
	if err != nil {
		if errors.Is(err, lnbits.ErrWalletNotFound) {
			writeJSON(w, http.StatusOK, dto.BalanceResponse{Success: false, Message: "Wallet not found"})
			return
		}
		writeJSON(w, http.StatusOK, dto.BalanceResponse{Success: false, Message: "Error getting balance"})
		return
	}

	_ = s.Balances.SetBalance(r.Context(), inkey, info.Balance)
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Success: true, Balance: &info.Balance})
}

// broadcast publica a atualização no canal do feed; falha só vira log
func (s *Server) broadcast(ctx context.Context, upd ws.ActivityUpdate) {
	if s.Feed == nil {
		return
	}
	b, _ := json.Marshal(upd)
	if err := s.Feed.Publish(ctx, s.FeedChannel, b); err != nil {
		s.Log.Warn("feed publish", zap.Error(err))
	}
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
