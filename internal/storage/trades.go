package storage

import (
	"context"
	"database/sql"
	"errors"

	"cardex/internal/models"
)

const (
	escrowLegQuery = `UPDATE content.collections SET waiting = waiting + 1
		WHERE id_user = $1 AND id_card = $2 AND amount > waiting;`
	releaseLegQuery = `UPDATE content.collections SET waiting = waiting - 1
		WHERE id_user = $1 AND id_card = $2;`
	giveLegQuery = `UPDATE content.collections SET amount = amount - 1, waiting = waiting - 1
		WHERE id_user = $1 AND id_card = $2;`
	receiveLegQuery = `INSERT INTO content.collections (id, id_user, id_card, amount, waiting)
		VALUES ($1, $2, $3, 1, 0)
		ON CONFLICT (id_user, id_card)
		DO UPDATE SET amount = content.collections.amount + 1;`
	createTradeQuery = `INSERT INTO content.trades (id, id_user_waiting, id_user, id_card, id_card_wanted, accepted)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING creation_time;`
	getTradesQuery = `SELECT id, id_user_waiting, id_user, id_card, id_card_wanted, accepted, creation_time
		FROM content.trades;`
	getTradeByIDQuery = `SELECT id, id_user_waiting, id_user, id_card, id_card_wanted, accepted, creation_time
		FROM content.trades WHERE id = $1;`
	getTradesByWaitingUserQuery = `SELECT id, id_user_waiting, id_user, id_card, id_card_wanted, accepted, creation_time
		FROM content.trades WHERE id_user_waiting = $1 ORDER BY creation_time DESC;`
	getTradesBySecondUserQuery = `SELECT id, id_user_waiting, id_user, id_card, id_card_wanted, accepted, creation_time
		FROM content.trades WHERE id_user = $1 ORDER BY creation_time DESC;`
	acceptTradeQuery = `UPDATE content.trades SET accepted = TRUE
		WHERE id = $1 AND accepted = FALSE
		RETURNING id, id_user_waiting, id_user, id_card, id_card_wanted, accepted, creation_time;`
	lockTradeQuery = `SELECT id, id_user_waiting, id_user, id_card, id_card_wanted, accepted, creation_time
		FROM content.trades WHERE id = $1 FOR UPDATE;`
	deleteTradeQuery = `DELETE FROM content.trades WHERE id = $1;`
)

// CreateTrade opens a trade: both offered cards are escrowed and the pending
// trade row is persisted, all inside one transaction. Each escrow leg only
// succeeds when the owner has a free copy (amount > waiting); otherwise the
// whole creation fails with ErrNotTradable and nothing is escrowed.
func (postgresql *PostgreSQL) CreateTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := postgresql.execLeg(ctx, tx, escrowLegQuery, trade.IDUserWaiting, trade.IDCard, ErrNotTradable); err != nil {
		return nil, err
	}
	if err := postgresql.execLeg(ctx, tx, escrowLegQuery, trade.IDUser, trade.IDCardWanted, ErrNotTradable); err != nil {
		return nil, err
	}

	trade.ID = newObjectID()
	trade.Accepted = false
	err = tx.QueryRowContext(ctx, createTradeQuery,
		trade.ID, trade.IDUserWaiting, trade.IDUser, trade.IDCard, trade.IDCardWanted).Scan(&trade.CreationTime)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createTradeQuery: %s", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return trade, nil
}

// GetTrades returns every trade.
func (postgresql *PostgreSQL) GetTrades(ctx context.Context) ([]models.Trade, error) {
	return postgresql.queryTrades(ctx, getTradesQuery, "getTradesQuery")
}

// GetTradeByID retrieves a single trade. Returns sql.ErrNoRows when absent.
func (postgresql *PostgreSQL) GetTradeByID(ctx context.Context, id string) (*models.Trade, error) {
	trade := &models.Trade{}
	err := postgresql.db.QueryRowContext(ctx, getTradeByIDQuery, id).Scan(
		&trade.ID, &trade.IDUserWaiting, &trade.IDUser, &trade.IDCard, &trade.IDCardWanted,
		&trade.Accepted, &trade.CreationTime)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getTradeByIDQuery: %s", err)
		return trade, err
	}
	return trade, nil
}

// GetTradesByWaitingUser returns the trades a user has proposed.
func (postgresql *PostgreSQL) GetTradesByWaitingUser(ctx context.Context, idUser string) ([]models.Trade, error) {
	return postgresql.queryTrades(ctx, getTradesByWaitingUserQuery, "getTradesByWaitingUserQuery", idUser)
}

// GetTradesBySecondUser returns the trades a user has been offered.
func (postgresql *PostgreSQL) GetTradesBySecondUser(ctx context.Context, idUser string) ([]models.Trade, error) {
	return postgresql.queryTrades(ctx, getTradesBySecondUserQuery, "getTradesBySecondUserQuery", idUser)
}

// AcceptTrade resolves a pending trade. The transition itself is the guard: a
// conditional "accepted = TRUE only if still FALSE" flip, so a trade can be
// accepted at most once. Within the same transaction both givers lose one
// copy (releasing its escrow) and both receivers gain one, so the ledger
// moves cards instead of duplicating them.
func (postgresql *PostgreSQL) AcceptTrade(ctx context.Context, id string) (*models.Trade, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	trade := &models.Trade{}
	err = tx.QueryRowContext(ctx, acceptTradeQuery, id).Scan(
		&trade.ID, &trade.IDUserWaiting, &trade.IDUser, &trade.IDCard, &trade.IDCardWanted,
		&trade.Accepted, &trade.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, postgresql.resolveMissedTransition(ctx, id)
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query acceptTradeQuery: %s", err)
		return nil, err
	}

	// Givers: escrow released and copy debited in one statement per side.
	if err := postgresql.execLeg(ctx, tx, giveLegQuery, trade.IDUserWaiting, trade.IDCard, sql.ErrNoRows); err != nil {
		return nil, err
	}
	if err := postgresql.execLeg(ctx, tx, giveLegQuery, trade.IDUser, trade.IDCardWanted, sql.ErrNoRows); err != nil {
		return nil, err
	}

	// Receivers: proposer gets the wanted card, counterpart the offered one.
	if _, err := tx.ExecContext(ctx, receiveLegQuery, newObjectID(), trade.IDUser, trade.IDCard); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query receiveLegQuery: %s", err)
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, receiveLegQuery, newObjectID(), trade.IDUserWaiting, trade.IDCardWanted); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query receiveLegQuery: %s", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return trade, nil
}

// DeclineTrade withdraws a trade. A still-pending trade has both escrow legs
// released before the row is removed; an already-accepted trade only loses
// its record. Returns the trade as it was before deletion.
func (postgresql *PostgreSQL) DeclineTrade(ctx context.Context, id string) (*models.Trade, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	trade := &models.Trade{}
	err = tx.QueryRowContext(ctx, lockTradeQuery, id).Scan(
		&trade.ID, &trade.IDUserWaiting, &trade.IDUser, &trade.IDCard, &trade.IDCardWanted,
		&trade.Accepted, &trade.CreationTime)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query lockTradeQuery: %s", err)
		return nil, err
	}

	if !trade.Accepted {
		if err := postgresql.execLeg(ctx, tx, releaseLegQuery, trade.IDUserWaiting, trade.IDCard, sql.ErrNoRows); err != nil {
			return nil, err
		}
		if err := postgresql.execLeg(ctx, tx, releaseLegQuery, trade.IDUser, trade.IDCardWanted, sql.ErrNoRows); err != nil {
			return nil, err
		}
	}

	if _, err := tx.ExecContext(ctx, deleteTradeQuery, id); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteTradeQuery: %s", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return trade, nil
}

// execLeg runs one ledger leg that must hit exactly one row; zero rows means
// the leg's precondition failed and noMatch is reported.
func (postgresql *PostgreSQL) execLeg(ctx context.Context, tx *sql.Tx, query, idUser, idCard string, noMatch error) error {
	result, err := tx.ExecContext(ctx, query, idUser, idCard)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a ledger leg: %s", err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in ledger leg: %s", err)
		return err
	}
	if rows == 0 {
		return noMatch
	}
	return nil
}

// resolveMissedTransition tells a vanished trade apart from an already
// resolved one after a conditional transition matched nothing.
func (postgresql *PostgreSQL) resolveMissedTransition(ctx context.Context, id string) error {
	_, err := postgresql.GetTradeByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.ErrNoRows
	}
	if err != nil {
		return err
	}
	return ErrTradeNotPending
}

func (postgresql *PostgreSQL) queryTrades(ctx context.Context, query, queryName string, args ...any) ([]models.Trade, error) {
	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", queryName, err)
		return nil, err
	}
	defer rows.Close()

	const initialTradeCapacity = 8
	trades := make([]models.Trade, 0, initialTradeCapacity)

	for rows.Next() {
		trade := models.Trade{}
		if err := rows.Scan(&trade.ID, &trade.IDUserWaiting, &trade.IDUser, &trade.IDCard,
			&trade.IDCardWanted, &trade.Accepted, &trade.CreationTime); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan trade in %s: %s", queryName, err)
			return nil, err
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in %s: %s", queryName, err)
		return trades, err
	}

	return trades, nil
}
