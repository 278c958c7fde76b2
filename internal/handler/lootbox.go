package handler

import (
	"errors"
	"net/http"

	"github.com/Vcvzgbzz/goodieBag/internal/cooldown"
	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
)

// OpenResponse is the JSON body for a successful open
type OpenResponse struct {
	Reward  domain.Reward `json:"reward"`
	Message string        `json:"message"`
}

// HandleOpenLootbox opens the free, cooldown-gated lootbox
// @Summary Open the free lootbox
// @Description Draws a random reward for the user; one free box per cooldown window
// @Tags lootbox
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace (admins may omit)"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} OpenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /lootbox [get]
func (h *Handler) HandleOpenLootbox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	cmd, err := h.parseUserCommand(r, true)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.economy.OpenFreeBox(ctx, cmd.ChannelID, cmd.UserID, cmd.Username)
	if err != nil {
		var onCooldown cooldown.ErrOnCooldown
		if errors.As(err, &onCooldown) {
			if cmd.TextMode {
				respondText(w, onCooldown.Error())
				return
			}
			respondJSON(w, http.StatusTooManyRequests, ErrorResponse{
				Error:      onCooldown.Error(),
				RetryAfter: onCooldown.RetryAfterSeconds(),
			})
			return
		}

		log.Error("Failed to open lootbox", "error", err, "user_id", cmd.UserID)
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}

	message := openedMessage(cmd.Username, result.Reward)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, OpenResponse{Reward: result.Reward, Message: message})
}

// HandleBuyLootbox purchases and opens a priced box tier
// @Summary Buy a lootbox
// @Description Debits the tier price from the user's balance and opens the box
// @Tags lootbox
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace (admins may omit)"
// @Param rarityType query string true "Box tier: common, uncommon, rare, epic, legendary"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} OpenResponse
// @Failure 400 {object} ErrorResponse
// @Router /buylootbox [get]
func (h *Handler) HandleBuyLootbox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	cmd, err := h.parseBuyBoxCommand(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.economy.BuyBox(ctx, cmd.ChannelID, cmd.UserID, cmd.Username, cmd.RarityType)
	if err != nil {
		var funds *domain.InsufficientFundsError
		if errors.As(err, &funds) {
			respondFailure(w, cmd.TextMode, http.StatusBadRequest, insufficientFundsMessage(cmd.RarityType, funds))
			return
		}
		if errors.Is(err, domain.ErrInvalidBoxType) {
			respondError(w, http.StatusBadRequest, "Invalid lootbox rarity type")
			return
		}

		log.Error("Failed to buy lootbox", "error", err, "user_id", cmd.UserID, "tier", cmd.RarityType)
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}

	message := boughtMessage(cmd.Username, result.Tier, result.Reward)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, OpenResponse{Reward: result.Reward, Message: message})
}

func (h *Handler) respondEconomyError(w http.ResponseWriter, r *http.Request, err error, userID string) {
	log := logger.FromContext(r.Context())
	log.Error("Economy operation failed", "error", err, "user_id", userID)
	status, msg := mapServiceError(err)
	respondError(w, status, msg)
}
