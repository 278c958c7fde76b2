package handler

import (
	"errors"
	"net/http"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
)

// SellResponse is the JSON body for a completed sell
type SellResponse struct {
	Sold    int    `json:"sold"`
	Value   int    `json:"value"`
	Message string `json:"message"`
}

// HandleSell sells up to quantity copies of one (itemName, itemCondition)
// @Summary Sell specific items
// @Tags economy
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace"
// @Param itemName query string true "Exact item name"
// @Param itemCondition query string true "Exact condition tag"
// @Param quantity query int true "How many to sell"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} SellResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sell [get]
func (h *Handler) HandleSell(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	cmd, err := h.parseSellCommand(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	condition := domain.Condition(cmd.ItemCondition)
	receipt, err := h.economy.SellItem(ctx, cmd.ChannelID, cmd.UserID, cmd.Username, cmd.ItemName, condition, cmd.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNoItems) {
			respondFailure(w, cmd.TextMode, http.StatusNotFound,
				sellNotFoundMessage(cmd.Username, cmd.ItemName, condition, cmd.Quantity))
			return
		}

		log.Error("Failed to sell item", "error", err, "user_id", cmd.UserID, "item", cmd.ItemName)
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}

	message := soldMessage(cmd.Username, cmd.ItemName, condition, receipt)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, SellResponse{Sold: receipt.Sold, Value: receipt.Value, Message: message})
}

// HandleSellAll liquidates the user's entire inventory
// @Summary Sell everything
// @Tags economy
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} SellResponse
// @Failure 404 {object} ErrorResponse
// @Router /sellAll [get]
func (h *Handler) HandleSellAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	cmd, err := h.parseUserCommand(r, false)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	receipt, err := h.economy.SellAll(ctx, cmd.ChannelID, cmd.UserID, cmd.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNoItems) {
			respondFailure(w, cmd.TextMode, http.StatusNotFound, nothingToSellMessage(cmd.Username))
			return
		}

		log.Error("Failed to sell all", "error", err, "user_id", cmd.UserID)
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}

	message := soldAllMessage(cmd.Username, receipt)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, SellResponse{Sold: receipt.Sold, Value: receipt.Value, Message: message})
}

// HandleSellAllRarity liquidates every item of one rarity. An empty match is
// a successful zero-item sale, not an error.
// @Summary Sell everything of one rarity
// @Tags economy
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} SellResponse
// @Failure 400 {object} ErrorResponse
func (h *Handler) HandleSellAllRarity(rarity domain.Rarity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		cmd, err := h.parseUserCommand(r, false)
		if err != nil {
			respondError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		receipt, err := h.economy.SellAllByRarity(ctx, cmd.ChannelID, cmd.UserID, cmd.Username, rarity)
		if err != nil {
			if errors.Is(err, domain.ErrNoItems) {
				message := noRarityItemsMessage(rarity)
				if cmd.TextMode {
					respondText(w, message)
					return
				}
				respondJSON(w, http.StatusOK, SellResponse{Sold: 0, Value: 0, Message: message})
				return
			}

			log.Error("Failed to sell by rarity", "error", err, "user_id", cmd.UserID, "rarity", rarity)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		message := soldRarityMessage(rarity, receipt)
		if cmd.TextMode {
			respondText(w, message)
			return
		}
		respondJSON(w, http.StatusOK, SellResponse{Sold: receipt.Sold, Value: receipt.Value, Message: message})
	}
}
