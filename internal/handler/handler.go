package handler

import (
	"github.com/Vcvzgbzz/goodieBag/internal/cooldown"
	"github.com/Vcvzgbzz/goodieBag/internal/economy"
	"github.com/Vcvzgbzz/goodieBag/internal/slots"
)

// DefaultAdminChannel is the namespace used when an admin caller omits
// channelId on the endpoints that allow it
const DefaultAdminChannel = "admin"

// Handler serves the lootbox game endpoints. Every game route is a GET with
// query parameters and supports textMode=true for a plain-text body aimed at
// chat overlays.
type Handler struct {
	economy economy.Service
	slots   slots.Service
	guard   *cooldown.Guard
}

// New creates the game endpoint handler
func New(economySvc economy.Service, slotsSvc slots.Service, guard *cooldown.Guard) *Handler {
	return &Handler{
		economy: economySvc,
		slots:   slotsSvc,
		guard:   guard,
	}
}
