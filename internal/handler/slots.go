package handler

import (
	"errors"
	"net/http"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
)

// SlotsResponse is the JSON body for a settled spin
type SlotsResponse struct {
	Result     [3]string `json:"result"`
	Multiplier float64   `json:"multiplier"`
	Winnings   int       `json:"winnings"`
	NewBalance int       `json:"newBalance"`
	Message    string    `json:"message"`
}

// HandleSlots settles one slots spin against the user's balance
// @Summary Spin the slots
// @Description Bets the given amount; winnings are floor(bet * multiplier)
// @Tags slots
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace"
// @Param balance query int true "Bet amount"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} SlotsResponse
// @Failure 400 {object} ErrorResponse
// @Router /slots [get]
func (h *Handler) HandleSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	cmd, err := h.parseSlotsCommand(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.slots.SpinSlots(ctx, cmd.ChannelID, cmd.UserID, cmd.Username, cmd.Bet)
	if err != nil {
		var funds *domain.InsufficientFundsError
		if errors.As(err, &funds) {
			respondFailure(w, cmd.TextMode, http.StatusBadRequest, slotsInsufficientFundsMessage(cmd.Username, funds))
			return
		}

		log.Error("Failed to spin slots", "error", err, "user_id", cmd.UserID, "bet", cmd.Bet)
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}

	message := slotsMessage(result)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, SlotsResponse{
		Result:     result.Reels,
		Multiplier: result.Multiplier,
		Winnings:   result.Winnings,
		NewBalance: result.NewBalance,
		Message:    message,
	})
}
