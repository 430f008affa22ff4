package app

import (
	"context"

	"cardex/internal/models"
)

// ProcessGetCollections retrieves every ledger entry.
func (app *App) ProcessGetCollections(ctx context.Context) ([]models.Collection, error) {
	return app.db.GetCollections(ctx)
}

// ProcessGetCollection retrieves one ledger entry by id.
func (app *App) ProcessGetCollection(ctx context.Context, id string) (*models.Collection, error) {
	return app.db.GetCollectionByID(ctx, id)
}

// ProcessGetCollectionsByUser retrieves all ledger entries of one user.
func (app *App) ProcessGetCollectionsByUser(ctx context.Context, idUser string) ([]models.Collection, error) {
	return app.db.GetCollectionsByUserID(ctx, idUser)
}

// ProcessGetTradableByUser retrieves the user's entries with at least one
// copy not escrowed in an open trade.
func (app *App) ProcessGetTradableByUser(ctx context.Context, idUser string) ([]models.Collection, error) {
	return app.db.GetTradableByUserID(ctx, idUser)
}

// ProcessGetCollectionByUserAndCard retrieves the ledger entry of one
// (user, card) pair.
func (app *App) ProcessGetCollectionByUserAndCard(ctx context.Context, idUser, idCard string) (*models.Collection, error) {
	return app.db.GetCollectionByUserAndCard(ctx, idUser, idCard)
}

// ProcessCreateCollection creates a ledger entry directly, outside the roll
// and trade flows. A duplicate (user, card) pair surfaces as a unique
// violation from the storage layer.
func (app *App) ProcessCreateCollection(ctx context.Context, req models.CreateCollectionRequest) (*models.Collection, error) {
	if req.IDUser == "" || req.IDCard == "" {
		return nil, ErrMissingCollectionFields
	}

	entry := &models.Collection{
		IDUser:  req.IDUser,
		IDCard:  req.IDCard,
		Amount:  req.Amount,
		Waiting: req.Waiting,
	}

	return app.db.CreateCollection(ctx, entry)
}

// ProcessUpdateCollection overwrites the counts of one ledger entry. The
// database check constraints still apply.
func (app *App) ProcessUpdateCollection(ctx context.Context, id string, req models.UpdateCollectionRequest) (*models.Collection, error) {
	return app.db.UpdateCollection(ctx, id, req.Amount, req.Waiting)
}

// ProcessDeleteCollection removes one ledger entry.
func (app *App) ProcessDeleteCollection(ctx context.Context, id string) error {
	return app.db.DeleteCollection(ctx, id)
}
