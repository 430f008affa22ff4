package storage

import (
	"context"

	"cardex/internal/models"
)

const (
	createCardQuery = `INSERT INTO content.cards (id, card_name, description, level, image)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`
	getCardsQuery        = `SELECT id, card_name, description, level, image FROM content.cards;`
	getCardByIDQuery     = `SELECT id, card_name, description, level, image FROM content.cards WHERE id = $1;`
	getCardsByLevelQuery = `SELECT id, card_name, description, level, image FROM content.cards WHERE level = $1;`
	deleteCardQuery      = `DELETE FROM content.cards WHERE id = $1;`
)

// CreateCard inserts a new catalog card.
func (postgresql *PostgreSQL) CreateCard(ctx context.Context, card *models.Card) (*models.Card, error) {
	card.ID = newObjectID()

	err := postgresql.db.QueryRowContext(ctx, createCardQuery,
		card.ID, card.Name, card.Description, card.Level, card.Image).Scan(&card.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createCardQuery: %s", err)
		return card, err
	}
	return card, nil
}

// GetCards returns the whole catalog.
func (postgresql *PostgreSQL) GetCards(ctx context.Context) ([]models.Card, error) {
	return postgresql.queryCards(ctx, getCardsQuery, "getCardsQuery")
}

// GetCardByID retrieves a single card. Returns sql.ErrNoRows when absent.
func (postgresql *PostgreSQL) GetCardByID(ctx context.Context, id string) (*models.Card, error) {
	card := &models.Card{}
	err := postgresql.db.QueryRowContext(ctx, getCardByIDQuery, id).Scan(
		&card.ID, &card.Name, &card.Description, &card.Level, &card.Image)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getCardByIDQuery: %s", err)
		return card, err
	}
	return card, nil
}

// GetCardsByLevel returns every catalog card of the given level. An empty
// slice means the level has no cards; callers decide whether that is an error.
func (postgresql *PostgreSQL) GetCardsByLevel(ctx context.Context, level int) ([]models.Card, error) {
	return postgresql.queryCards(ctx, getCardsByLevelQuery, "getCardsByLevelQuery", level)
}

// DeleteCard removes a catalog card. Returns sql.ErrNoRows when no row matched.
func (postgresql *PostgreSQL) DeleteCard(ctx context.Context, id string) error {
	return postgresql.execExpectingRow(ctx, deleteCardQuery, "deleteCardQuery", id)
}

func (postgresql *PostgreSQL) queryCards(ctx context.Context, query, queryName string, args ...any) ([]models.Card, error) {
	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", queryName, err)
		return nil, err
	}
	defer rows.Close()

	const initialCardCapacity = 16
	cards := make([]models.Card, 0, initialCardCapacity)

	for rows.Next() {
		card := models.Card{}
		if err := rows.Scan(&card.ID, &card.Name, &card.Description, &card.Level, &card.Image); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan card in %s: %s", queryName, err)
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in %s: %s", queryName, err)
		return cards, err
	}

	return cards, nil
}
