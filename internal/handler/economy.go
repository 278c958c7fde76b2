package handler

import (
	"net/http"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
)

// BalanceResponse is the JSON body for a balance read
type BalanceResponse struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	Balance  int    `json:"balance"`
	Message  string `json:"message"`
}

// InventoryResponse is the JSON body for an inventory read
type InventoryResponse struct {
	Inventory   []domain.InventoryGroup `json:"inventory"`
	TotalWealth int                     `json:"totalWealth"`
	Message     string                  `json:"message"`
}

// HandleBalance reads the user's balance, creating the account lazily
// @Summary Check balance
// @Tags economy
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /balance [get]
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.parseUserCommand(r, false)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	acc, err := h.economy.GetBalance(r.Context(), cmd.ChannelID, cmd.UserID, cmd.Username)
	if err != nil {
		h.respondEconomyError(w, r, err, cmd.UserID)
		return
	}

	message := balanceMessage(cmd.Username, acc.Balance)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{
		Username: cmd.Username,
		UserID:   cmd.UserID,
		Balance:  acc.Balance,
		Message:  message,
	})
}

// HandleInventory returns the user's grouped inventory
// @Summary Check inventory
// @Tags economy
// @Produce json
// @Param username query string true "Display name"
// @Param userId query string true "Platform user ID"
// @Param channelId query string true "Channel namespace"
// @Param textMode query bool false "Plain-text response"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func (h *Handler) HandleInventory(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.parseUserCommand(r, false)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	inv, err := h.economy.GetInventory(r.Context(), cmd.ChannelID, cmd.UserID)
	if err != nil {
		h.respondEconomyError(w, r, err, cmd.UserID)
		return
	}

	if len(inv.Groups) == 0 {
		message := emptyInventoryMessage(cmd.Username)
		if cmd.TextMode {
			respondText(w, message)
			return
		}
		respondJSON(w, http.StatusOK, InventoryResponse{
			Inventory: []domain.InventoryGroup{},
			Message:   message,
		})
		return
	}

	message := inventoryMessage(cmd.Username, inv)
	if cmd.TextMode {
		respondText(w, message)
		return
	}
	respondJSON(w, http.StatusOK, InventoryResponse{
		Inventory:   inv.Groups,
		TotalWealth: inv.TotalWealth,
		Message:     message,
	})
}
