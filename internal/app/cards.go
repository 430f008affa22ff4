package app

import (
	"context"

	"cardex/internal/models"
)

// ProcessCreateCard adds a card to the catalog.
func (app *App) ProcessCreateCard(ctx context.Context, req models.CreateCardRequest) (*models.Card, error) {
	if req.Name == "" {
		return nil, ErrMissingCardFields
	}
	if req.Level < app.roll.LevelMin || req.Level > app.roll.LevelMax {
		return nil, ErrInvalidCardLevel
	}

	card := &models.Card{
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Image:       req.Image,
	}

	return app.db.CreateCard(ctx, card)
}

// ProcessGetCards retrieves the full catalog.
func (app *App) ProcessGetCards(ctx context.Context) ([]models.Card, error) {
	return app.db.GetCards(ctx)
}

// ProcessGetCard retrieves one card by id.
func (app *App) ProcessGetCard(ctx context.Context, id string) (*models.Card, error) {
	return app.db.GetCardByID(ctx, id)
}

// ProcessGetCardsByLevel retrieves the cards of one level. A level with no
// cards returns ErrNoCardsForLevel.
func (app *App) ProcessGetCardsByLevel(ctx context.Context, level int) ([]models.Card, error) {
	cards, err := app.db.GetCardsByLevel(ctx, level)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrNoCardsForLevel
	}
	return cards, nil
}

// ProcessDeleteCard removes a card from the catalog.
func (app *App) ProcessDeleteCard(ctx context.Context, id string) error {
	return app.db.DeleteCard(ctx, id)
}

// ProcessRoll performs one roll for the user: claim the roll slot, draw the
// cards, grant them all in one transaction and return the updated collection
// entries.
//
// The claim is a single conditional update on the user's last roll date, so
// two concurrent rolls inside one cooldown window can never both pass the
// gate. A drawn level with no catalog cards aborts the whole roll; nothing is
// granted partially.
func (app *App) ProcessRoll(ctx context.Context, userID string) ([]models.Collection, error) {
	if _, err := app.db.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	now := app.now()
	claimed, err := app.db.ClaimRoll(ctx, userID, now, now.Add(-app.roll.Cooldown))
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Zero rows both on cooldown and when the user vanished between the
		// lookup and the claim; re-read to tell the two apart.
		if _, err := app.db.GetUserByID(ctx, userID); err != nil {
			return nil, err
		}
		return nil, ErrRollOnCooldown
	}

	cardIDs, err := app.drawCards(ctx)
	if err != nil {
		return nil, err
	}

	return app.db.GrantCards(ctx, userID, cardIDs)
}

// drawCards samples CardCount cards: a uniform level in [LevelMin, LevelMax],
// then a uniform card of that level. Catalog queries are cached per roll.
func (app *App) drawCards(ctx context.Context) ([]string, error) {
	byLevel := make(map[int][]models.Card)
	cardIDs := make([]string, 0, app.roll.CardCount)

	for i := 0; i < app.roll.CardCount; i++ {
		level := app.roll.LevelMin + app.rand.IntN(app.roll.LevelMax-app.roll.LevelMin+1)

		cards, ok := byLevel[level]
		if !ok {
			var err error
			cards, err = app.db.GetCardsByLevel(ctx, level)
			if err != nil {
				return nil, err
			}
			byLevel[level] = cards
		}
		if len(cards) == 0 {
			return nil, ErrCatalogEmptyForLevel
		}

		cardIDs = append(cardIDs, cards[app.rand.IntN(len(cards))].ID)
	}

	return cardIDs, nil
}
