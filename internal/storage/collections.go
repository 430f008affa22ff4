package storage

import (
	"context"
	"database/sql"

	"cardex/internal/models"
)

const (
	getCollectionsQuery       = `SELECT id, id_user, id_card, amount, waiting FROM content.collections;`
	getCollectionByIDQuery    = `SELECT id, id_user, id_card, amount, waiting FROM content.collections WHERE id = $1;`
	getCollectionsByUserQuery = `SELECT id, id_user, id_card, amount, waiting FROM content.collections WHERE id_user = $1;`
	getTradableByUserQuery    = `SELECT id, id_user, id_card, amount, waiting FROM content.collections WHERE id_user = $1 AND amount > waiting;`
	getCollectionByPairQuery  = `SELECT id, id_user, id_card, amount, waiting FROM content.collections WHERE id_user = $1 AND id_card = $2;`
	createCollectionQuery     = `INSERT INTO content.collections (id, id_user, id_card, amount, waiting)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, id_user, id_card, amount, waiting;`
	updateCollectionQuery = `UPDATE content.collections SET amount = $2, waiting = $3 WHERE id = $1
		RETURNING id, id_user, id_card, amount, waiting;`
	deleteCollectionQuery = `DELETE FROM content.collections WHERE id = $1;`
	adjustCollectionQuery = `INSERT INTO content.collections (id, id_user, id_card, amount, waiting)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id_user, id_card)
		DO UPDATE SET amount = content.collections.amount + $4, waiting = content.collections.waiting + $5
		RETURNING id, id_user, id_card, amount, waiting;`
)

// GetCollections returns every ledger row.
func (postgresql *PostgreSQL) GetCollections(ctx context.Context) ([]models.Collection, error) {
	return postgresql.queryCollections(ctx, postgresql.db, getCollectionsQuery, "getCollectionsQuery")
}

// GetCollectionByID retrieves a single ledger row by id.
func (postgresql *PostgreSQL) GetCollectionByID(ctx context.Context, id string) (*models.Collection, error) {
	return postgresql.scanCollection(postgresql.db.QueryRowContext(ctx, getCollectionByIDQuery, id), "getCollectionByIDQuery")
}

// GetCollectionsByUserID returns every ledger row of one user.
func (postgresql *PostgreSQL) GetCollectionsByUserID(ctx context.Context, idUser string) ([]models.Collection, error) {
	return postgresql.queryCollections(ctx, postgresql.db, getCollectionsByUserQuery, "getCollectionsByUserQuery", idUser)
}

// GetTradableByUserID returns the user's rows with free copies, i.e. rows
// where amount exceeds the escrowed waiting count.
func (postgresql *PostgreSQL) GetTradableByUserID(ctx context.Context, idUser string) ([]models.Collection, error) {
	return postgresql.queryCollections(ctx, postgresql.db, getTradableByUserQuery, "getTradableByUserQuery", idUser)
}

// GetCollectionByUserAndCard does a point lookup on the unique
// (id_user, id_card) pair. Returns sql.ErrNoRows when absent.
func (postgresql *PostgreSQL) GetCollectionByUserAndCard(ctx context.Context, idUser, idCard string) (*models.Collection, error) {
	return postgresql.scanCollection(postgresql.db.QueryRowContext(ctx, getCollectionByPairQuery, idUser, idCard), "getCollectionByPairQuery")
}

// CreateCollection inserts a ledger row directly. A second row for the same
// (id_user, id_card) pair surfaces as a pgerrcode.UniqueViolation.
func (postgresql *PostgreSQL) CreateCollection(ctx context.Context, entry *models.Collection) (*models.Collection, error) {
	entry.ID = newObjectID()
	return postgresql.scanCollection(postgresql.db.QueryRowContext(ctx, createCollectionQuery,
		entry.ID, entry.IDUser, entry.IDCard, entry.Amount, entry.Waiting), "createCollectionQuery")
}

// UpdateCollection overwrites the counts of an existing row. The table check
// constraints still reject negative counts and waiting above amount.
func (postgresql *PostgreSQL) UpdateCollection(ctx context.Context, id string, amount, waiting int) (*models.Collection, error) {
	return postgresql.scanCollection(postgresql.db.QueryRowContext(ctx, updateCollectionQuery, id, amount, waiting), "updateCollectionQuery")
}

// DeleteCollection removes a ledger row. Returns sql.ErrNoRows when no row matched.
func (postgresql *PostgreSQL) DeleteCollection(ctx context.Context, id string) error {
	return postgresql.execExpectingRow(ctx, deleteCollectionQuery, "deleteCollectionQuery", id)
}

// AdjustCollection applies amount/waiting deltas to one (id_user, id_card)
// pair as a single conditional upsert. The row is created when absent, so
// first acquisition and subsequent increments are the same operation.
func (postgresql *PostgreSQL) AdjustCollection(ctx context.Context, idUser, idCard string, amountDelta, waitingDelta int) (*models.Collection, error) {
	return postgresql.scanCollection(postgresql.db.QueryRowContext(ctx, adjustCollectionQuery,
		newObjectID(), idUser, idCard, amountDelta, waitingDelta), "adjustCollectionQuery")
}

// GrantCards increments the user's amount for every card in one transaction,
// so a roll either grants the whole batch or nothing.
func (postgresql *PostgreSQL) GrantCards(ctx context.Context, idUser string, cardIDs []string) ([]models.Collection, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	entries := make([]models.Collection, 0, len(cardIDs))
	for _, cardID := range cardIDs {
		entry, err := postgresql.scanCollection(tx.QueryRowContext(ctx, adjustCollectionQuery,
			newObjectID(), idUser, cardID, 1, 0), "adjustCollectionQuery")
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return entries, nil
}

type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (postgresql *PostgreSQL) scanCollection(row *sql.Row, queryName string) (*models.Collection, error) {
	entry := &models.Collection{}
	err := row.Scan(&entry.ID, &entry.IDUser, &entry.IDCard, &entry.Amount, &entry.Waiting)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to scan collection in %s: %s", queryName, err)
		return entry, err
	}
	return entry, nil
}

func (postgresql *PostgreSQL) queryCollections(ctx context.Context, q rowQuerier, query, queryName string, args ...any) ([]models.Collection, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", queryName, err)
		return nil, err
	}
	defer rows.Close()

	const initialCollectionCapacity = 16
	entries := make([]models.Collection, 0, initialCollectionCapacity)

	for rows.Next() {
		entry := models.Collection{}
		if err := rows.Scan(&entry.ID, &entry.IDUser, &entry.IDCard, &entry.Amount, &entry.Waiting); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan collection in %s: %s", queryName, err)
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in %s: %s", queryName, err)
		return entries, err
	}

	return entries, nil
}
