package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
)

func TestHandleSell_Success(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("SellItem", mock.Anything, "chan1", "u1", "viewer", "GLOCK", domain.ConditionFieldTested, 2).
		Return(&domain.SellReceipt{Sold: 2, Value: 3100, Rarity: domain.RarityRare}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/sell?username=viewer&userId=u1&channelId=chan1&itemName=GLOCK&itemCondition=Field-Tested&quantity=2", nil)
	rec := httptest.NewRecorder()
	h.HandleSell(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Sold)
	assert.Equal(t, 3100, resp.Value)
	assert.Contains(t, resp.Message, "sold 2x")
	assert.Contains(t, resp.Message, "💰3100")
}

func TestHandleSell_InvalidQuantity(t *testing.T) {
	h := newTestHandler(new(MockEconomy), new(MockSlots))

	for _, qty := range []string{"", "0", "-3", "abc"} {
		req := httptest.NewRequest(http.MethodGet,
			"/sell?username=viewer&userId=u1&channelId=chan1&itemName=GLOCK&itemCondition=Field-Tested&quantity="+qty, nil)
		rec := httptest.NewRecorder()
		h.HandleSell(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "quantity=%q", qty)
	}
}

func TestHandleSell_NotFound(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("SellItem", mock.Anything, "chan1", "u1", "viewer", "ghost", domain.Condition("Factory-New"), 1).
		Return(nil, domain.ErrNoItems)

	req := httptest.NewRequest(http.MethodGet,
		"/sell?username=viewer&userId=u1&channelId=chan1&itemName=ghost&itemCondition=Factory-New&quantity=1", nil)
	rec := httptest.NewRecorder()
	h.HandleSell(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, `you don't have 1x "Factory-New" "ghost" to sell`)
}

func TestHandleSellAll_Success(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("SellAll", mock.Anything, "chan1", "u1", "viewer").
		Return(&domain.SellReceipt{Sold: 7, Value: 12000}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sellAll?username=viewer&userId=u1&channelId=chan1", nil)
	rec := httptest.NewRecorder()
	h.HandleSellAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "✅ viewer sold ALL items (7) for 💰12000.", resp.Message)
}

func TestHandleSellAll_Empty404(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("SellAll", mock.Anything, "chan1", "u1", "viewer").Return(nil, domain.ErrNoItems)

	req := httptest.NewRequest(http.MethodGet, "/sellAll?username=viewer&userId=u1&channelId=chan1", nil)
	rec := httptest.NewRecorder()
	h.HandleSellAll(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "🫥 viewer has no items to sell.", resp.Error)
}

func TestHandleSellAllRarity_Success(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("SellAllByRarity", mock.Anything, "chan1", "u1", "viewer", domain.RarityLegendary).
		Return(&domain.SellReceipt{Sold: 3, Value: 25500, Rarity: domain.RarityLegendary}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sellAllLegendary?username=viewer&userId=u1&channelId=chan1", nil)
	rec := httptest.NewRecorder()
	h.HandleSellAllRarity(domain.RarityLegendary)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Sold 3 Legendary item(s) for 💰25500. 🟡", resp.Message)
}

func TestHandleSellAllRarity_EmptyIsZeroSale(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("SellAllByRarity", mock.Anything, "chan1", "u1", "viewer", domain.RarityMythic).
		Return(nil, domain.ErrNoItems)

	req := httptest.NewRequest(http.MethodGet, "/sellAllMythic?username=viewer&userId=u1&channelId=chan1", nil)
	rec := httptest.NewRecorder()
	h.HandleSellAllRarity(domain.RarityMythic)(rec, req)

	// An empty rarity sale reports zero items, not an error.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Sold)
	assert.Equal(t, "🫥 No Mythic items found to sell.", resp.Message)
}

func TestHandleBalance_Success(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("GetBalance", mock.Anything, "chan1", "u1", "viewer").
		Return(&domain.Account{UserID: "u1", Username: "viewer", Balance: 420}, nil)

	req := httptest.NewRequest(http.MethodGet, "/balance?username=viewer&userId=u1&channelId=chan1", nil)
	rec := httptest.NewRecorder()
	h.HandleBalance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 420, resp.Balance)
	assert.Equal(t, "🏦 viewer's balance: 💰420", resp.Message)
}

func TestHandleInventory_GroupedAndOrdered(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	inv := &domain.Inventory{
		Groups: []domain.InventoryGroup{
			{Name: "GloriousGlorp", Rarity: domain.RarityMythic, Condition: domain.ConditionFactoryNew, Count: 1, TotalValue: 53325},
			{Name: "Bottle", Rarity: domain.RarityCommon, Condition: domain.ConditionWellWorn, Count: 3, TotalValue: 600},
		},
		TotalWealth: 53925,
	}
	econ.On("GetInventory", mock.Anything, "chan1", "u1").Return(inv, nil)

	req := httptest.NewRequest(http.MethodGet, "/inventory?username=viewer&userId=u1&channelId=chan1&textMode=true", nil)
	rec := httptest.NewRecorder()
	h.HandleInventory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "🎒 viewer's Inventory →")
	assert.Contains(t, body, "🔴 MYTHIC: GloriousGlorp (Factory-New) x1 — 💰53325")
	assert.Contains(t, body, "⚪ COMMON: Bottle (Well-Worn) x3 — 💰600")
	assert.Contains(t, body, "🏦 Total Value: 💰53925")
	// Mythic renders before Common.
	assert.Less(t, strings.Index(body, "MYTHIC"), strings.Index(body, "COMMON"))
}

func TestHandleInventory_Empty(t *testing.T) {
	econ := new(MockEconomy)
	h := newTestHandler(econ, new(MockSlots))

	econ.On("GetInventory", mock.Anything, "chan1", "u1").
		Return(&domain.Inventory{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/inventory?username=viewer&userId=u1&channelId=chan1", nil)
	rec := httptest.NewRecorder()
	h.HandleInventory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp InventoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Inventory)
	assert.Equal(t, "viewer has no loot yet. 🕳️", resp.Message)
}
