package app

import (
	"context"

	"cardex/internal/models"
)

// Notification types written by the trade flow.
const (
	notificationTradeOffer    = "trade_offer"
	notificationTradeAccepted = "trade_accepted"
	notificationTradeDeclined = "trade_declined"
)

// ProcessCreateTrade proposes a trade. The storage layer escrows one copy on
// each side inside the same transaction that inserts the pending trade row;
// a side without a free copy fails the whole proposal. The counterpart gets a
// best-effort inbox notification.
func (app *App) ProcessCreateTrade(ctx context.Context, req models.CreateTradeRequest) (*models.Trade, error) {
	if req.IDUserWaiting == "" || req.IDUser == "" || req.IDCard == "" || req.IDCardWanted == "" {
		return nil, ErrMissingTradeFields
	}

	trade := &models.Trade{
		IDUserWaiting: req.IDUserWaiting,
		IDUser:        req.IDUser,
		IDCard:        req.IDCard,
		IDCardWanted:  req.IDCardWanted,
	}

	trade, err := app.db.CreateTrade(ctx, trade)
	if err != nil {
		return nil, err
	}

	app.notifyTrade(ctx, trade.IDUser, notificationTradeOffer,
		"you received a trade offer")
	return trade, nil
}

// ProcessGetTrades retrieves every trade.
func (app *App) ProcessGetTrades(ctx context.Context) ([]models.Trade, error) {
	return app.db.GetTrades(ctx)
}

// ProcessGetTrade retrieves one trade by id.
func (app *App) ProcessGetTrade(ctx context.Context, id string) (*models.Trade, error) {
	return app.db.GetTradeByID(ctx, id)
}

// ProcessGetTradesByWaitingUser retrieves the trades proposed by one user.
func (app *App) ProcessGetTradesByWaitingUser(ctx context.Context, idUser string) ([]models.Trade, error) {
	return app.db.GetTradesByWaitingUser(ctx, idUser)
}

// ProcessGetTradesBySecondUser retrieves the trades where one user is the
// counterpart.
func (app *App) ProcessGetTradesBySecondUser(ctx context.Context, idUser string) ([]models.Trade, error) {
	return app.db.GetTradesBySecondUser(ctx, idUser)
}

// ProcessAcceptTrade accepts a pending trade: the storage layer flips the
// state at most once and swaps the two cards in the same transaction. The
// proposer gets a best-effort inbox notification.
func (app *App) ProcessAcceptTrade(ctx context.Context, id string) (*models.Trade, error) {
	trade, err := app.db.AcceptTrade(ctx, id)
	if err != nil {
		return nil, err
	}

	app.notifyTrade(ctx, trade.IDUserWaiting, notificationTradeAccepted,
		"your trade offer was accepted")
	return trade, nil
}

// ProcessDeclineTrade declines or withdraws a trade. A still-pending trade has
// its escrowed copies released; the row is removed either way. The proposer
// gets a best-effort inbox notification when the trade was still pending.
func (app *App) ProcessDeclineTrade(ctx context.Context, id string) (*models.Trade, error) {
	trade, err := app.db.DeclineTrade(ctx, id)
	if err != nil {
		return nil, err
	}

	if !trade.Accepted {
		app.notifyTrade(ctx, trade.IDUserWaiting, notificationTradeDeclined,
			"your trade offer was declined")
	}
	return trade, nil
}

// notifyTrade writes an inbox entry after a committed trade operation.
// Failures are logged and never propagated.
func (app *App) notifyTrade(ctx context.Context, idUser, notifType, content string) {
	notif := &models.Notification{
		IDUser:  idUser,
		Type:    notifType,
		Content: content,
	}
	if _, err := app.db.CreateNotification(ctx, notif); err != nil {
		app.log.Sugar().Errorf("Failed to create %s notification for user %s: %s", notifType, idUser, err)
	}
}
