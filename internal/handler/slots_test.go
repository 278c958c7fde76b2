package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
)

func TestHandleSlots_WinJSON(t *testing.T) {
	slotsSvc := new(MockSlots)
	h := newTestHandler(new(MockEconomy), slotsSvc)

	slotsSvc.On("SpinSlots", mock.Anything, "chan1", "u1", "viewer", 50).
		Return(&domain.SlotsResult{
			UserID:     "u1",
			Username:   "viewer",
			Reels:      [3]string{"💎", "💎", "💎"},
			BetAmount:  50,
			Multiplier: 10,
			Winnings:   500,
			NewBalance: 500,
			Outcome:    "BLING BLING BOY 💎💎💎!",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/slots?username=viewer&userId=u1&channelId=chan1&balance=50", nil)
	rec := httptest.NewRecorder()
	h.HandleSlots(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, [3]string{"💎", "💎", "💎"}, resp.Result)
	assert.Equal(t, 500, resp.Winnings)
	assert.Equal(t, 500, resp.NewBalance)
	assert.Contains(t, resp.Message, "[ 💎 | 💎 | 💎 ]")
	assert.Contains(t, resp.Message, "You won 💰500")
	assert.Contains(t, resp.Message, "New balance: 💼 500")
}

func TestHandleSlots_LossTextMode(t *testing.T) {
	slotsSvc := new(MockSlots)
	h := newTestHandler(new(MockEconomy), slotsSvc)

	slotsSvc.On("SpinSlots", mock.Anything, "chan1", "u1", "viewer", 80).
		Return(&domain.SlotsResult{
			Reels:      [3]string{"🍒", "🍋", "🍇"},
			BetAmount:  80,
			Multiplier: 0,
			Winnings:   0,
			NewBalance: 120,
			Outcome:    "No match 😢",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/slots?username=viewer&userId=u1&channelId=chan1&balance=80&textMode=true", nil)
	rec := httptest.NewRecorder()
	h.HandleSlots(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You lost 💀80")
}

func TestHandleSlots_InvalidBet(t *testing.T) {
	h := newTestHandler(new(MockEconomy), new(MockSlots))

	for _, bet := range []string{"", "0", "-5", "nope"} {
		req := httptest.NewRequest(http.MethodGet, "/slots?username=viewer&userId=u1&channelId=chan1&balance="+bet, nil)
		rec := httptest.NewRecorder()
		h.HandleSlots(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "balance=%q", bet)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidBet, resp.Error)
	}
}

func TestHandleSlots_InsufficientFunds(t *testing.T) {
	slotsSvc := new(MockSlots)
	h := newTestHandler(new(MockEconomy), slotsSvc)

	slotsSvc.On("SpinSlots", mock.Anything, "chan1", "u1", "viewer", 500).
		Return(nil, &domain.InsufficientFundsError{Need: 500, Have: 40})

	req := httptest.NewRequest(http.MethodGet, "/slots?username=viewer&userId=u1&channelId=chan1&balance=500", nil)
	rec := httptest.NewRecorder()
	h.HandleSlots(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "❌ viewer, you don't have enough 💰 to bet 500. Current balance: 40", resp.Error)
}

func TestHandleSlots_MissingChannel(t *testing.T) {
	h := newTestHandler(new(MockEconomy), new(MockSlots))

	req := httptest.NewRequest(http.MethodGet, "/slots?username=viewer&userId=u1&balance=50", nil)
	rec := httptest.NewRecorder()
	h.HandleSlots(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
