package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Query parameter names shared by the game endpoints
const (
	paramUsername      = "username"
	paramUserID        = "userId"
	paramChannelID     = "channelId"
	paramTextMode      = "textMode"
	paramRarityType    = "rarityType"
	paramItemName      = "itemName"
	paramItemCondition = "itemCondition"
	paramQuantity      = "quantity"
	paramBalance       = "balance"
)

// Validation refusal messages
const (
	ErrMsgMissingUserInfo       = "Missing user info"
	ErrMsgMissingChannelID      = "Missing channel ID"
	ErrMsgMissingRequiredFields = "Missing required fields"
	ErrMsgInvalidBet            = "Invalid or missing bet amount"
)

// validate is the shared validator for command structs
var validate = validator.New()

// userCommand is the identity every game endpoint requires
type userCommand struct {
	Username  string `validate:"required"`
	UserID    string `validate:"required"`
	ChannelID string `validate:"required"`
	TextMode  bool
}

// buyBoxCommand parameterizes /buylootbox
type buyBoxCommand struct {
	userCommand
	RarityType string `validate:"required"`
}

// sellCommand parameterizes /sell
type sellCommand struct {
	userCommand
	ItemName      string `validate:"required"`
	ItemCondition string `validate:"required"`
	Quantity      int    `validate:"min=1"`
}

// slotsCommand parameterizes /slots. The bet rides in the balance parameter,
// a quirk of the chat-bot integration this API serves.
type slotsCommand struct {
	userCommand
	Bet int `validate:"min=1"`
}

// stripQuotes removes one pair of surrounding double quotes. Chat-bot
// templating engines pass values wrapped this way.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// queryValue reads one query parameter with quote stripping applied
func queryValue(r *http.Request, key string) string {
	return stripQuotes(r.URL.Query().Get(key))
}

// validationMessage phrases one refusal sentence for a failed command parse
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrMsgInvalidRequest
	}
	switch verrs[0].Field() {
	case "Username", "UserID":
		return ErrMsgMissingUserInfo
	case "ChannelID":
		return ErrMsgMissingChannelID
	case "RarityType":
		return ErrMsgMissingRequiredFields
	case "Bet":
		return ErrMsgInvalidBet
	default:
		return ErrMsgInvalidRequest
	}
}

// readUserCommand builds the shared identity command from the query string
// without validating it; callers validate the full command struct.
// allowAdminDefault substitutes the admin namespace when an allow-listed
// caller omits channelId.
func (h *Handler) readUserCommand(r *http.Request, allowAdminDefault bool) userCommand {
	cmd := userCommand{
		Username:  queryValue(r, paramUsername),
		UserID:    queryValue(r, paramUserID),
		ChannelID: queryValue(r, paramChannelID),
		TextMode:  queryValue(r, paramTextMode) == "true",
	}
	if cmd.ChannelID == "" && allowAdminDefault && h.guard.IsAdmin(cmd.Username) {
		cmd.ChannelID = DefaultAdminChannel
	}
	return cmd
}

func (h *Handler) parseUserCommand(r *http.Request, allowAdminDefault bool) (userCommand, error) {
	cmd := h.readUserCommand(r, allowAdminDefault)
	return cmd, validate.Struct(cmd)
}

func (h *Handler) parseBuyBoxCommand(r *http.Request) (buyBoxCommand, error) {
	cmd := buyBoxCommand{
		userCommand: h.readUserCommand(r, true),
		RarityType:  queryValue(r, paramRarityType),
	}
	return cmd, validate.Struct(cmd)
}

func (h *Handler) parseSellCommand(r *http.Request) (sellCommand, error) {
	qty, err := strconv.Atoi(queryValue(r, paramQuantity))
	if err != nil {
		qty = 0 // fails min=1 below
	}

	cmd := sellCommand{
		userCommand:   h.readUserCommand(r, false),
		ItemName:      queryValue(r, paramItemName),
		ItemCondition: queryValue(r, paramItemCondition),
		Quantity:      qty,
	}
	return cmd, validate.Struct(cmd)
}

func (h *Handler) parseSlotsCommand(r *http.Request) (slotsCommand, error) {
	bet, err := strconv.Atoi(queryValue(r, paramBalance))
	if err != nil {
		bet = 0
	}

	cmd := slotsCommand{userCommand: h.readUserCommand(r, false), Bet: bet}
	return cmd, validate.Struct(cmd)
}
