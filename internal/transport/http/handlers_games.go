package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appgames "redluck-casino/internal/app/games"
	"redluck-casino/internal/game"
	"redluck-casino/internal/ledger"
)

type GamesHandlers struct {
	svc *appgames.Service
}

func NewGamesHandlers(svc *appgames.Service) *GamesHandlers {
	return &GamesHandlers{svc: svc}
}

func (h *GamesHandlers) Spin() http.HandlerFunc {
	type request struct {
		Bet int64 `json:"bet"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Spin(r.Context(), u.ID, req.Bet)
		if err != nil {
			writeGameError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GamesHandlers) PokerDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.svc.PokerDeal(r.Context(), u.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GamesHandlers) PokerDraw() http.HandlerFunc {
	type request struct {
		Holds []int `json:"holds"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.PokerDraw(r.Context(), u.ID, req.Holds)
		if err != nil {
			writeGameError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GamesHandlers) MemoryStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.svc.MemoryStart(r.Context(), u.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func (h *GamesHandlers) MemoryFlip() http.HandlerFunc {
	type request struct {
		Index int `json:"index"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.MemoryFlip(r.Context(), u.ID, req.Index)
		if err != nil {
			writeGameError(w, err)
			return
		}
		WriteJSON(w, resp)
	}
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		WriteHTTPError(w, http.StatusConflict, "insufficient_balance")
	case errors.Is(err, ledger.ErrInvalidWager):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_wager")
	case errors.Is(err, appgames.ErrNoActiveRound):
		WriteHTTPError(w, http.StatusConflict, "no_active_round")
	case errors.Is(err, appgames.ErrInvalidHold),
		errors.Is(err, game.ErrInvalidCell),
		errors.Is(err, game.ErrCellRevealed),
		errors.Is(err, game.ErrBoardDone),
		errors.Is(err, game.ErrAlreadyDrawn):
		WriteHTTPError(w, http.StatusBadRequest, err.Error())
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
