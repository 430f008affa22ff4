package storage

import (
	"context"
	"database/sql"
	"time"

	"cardex/internal/models"
)

const (
	createUserQuery = `INSERT INTO content.users (id, username, password_hash, email, firstname, lastname, birth_date, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;`
	getUserByIDQuery = `SELECT id, username, password_hash, email, firstname, lastname, birth_date, photo, last_roll_date
		FROM content.users WHERE id = $1;`
	getUserByUsernameQuery = `SELECT id, username, password_hash, email, firstname, lastname, birth_date, photo, last_roll_date
		FROM content.users WHERE username = $1;`
	updateUserQuery = `UPDATE content.users
		SET username = $2, password_hash = $3, email = $4, firstname = $5, lastname = $6, birth_date = $7, photo = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, password_hash, email, firstname, lastname, birth_date, photo, last_roll_date;`
	deleteUserQuery = `DELETE FROM content.users WHERE id = $1;`
	claimRollQuery  = `UPDATE content.users SET last_roll_date = $2, updated_at = NOW()
		WHERE id = $1 AND (last_roll_date IS NULL OR last_roll_date < $3);`
)

// CreateUser registers a new user. The caller supplies an already-hashed
// password; the unique constraints on username and email surface as a
// pgerrcode.UniqueViolation.
func (postgresql *PostgreSQL) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = newObjectID()

	err := postgresql.db.QueryRowContext(ctx, createUserQuery,
		user.ID, user.Username, user.PasswordHash, user.Email,
		user.Firstname, user.Lastname, user.BirthDate, user.Photo).Scan(&user.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createUserQuery: %s", err)
		return user, err
	}
	return user, nil
}

// GetUserByID retrieves a single user by id. Returns sql.ErrNoRows when the
// user does not exist.
func (postgresql *PostgreSQL) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return postgresql.scanUser(postgresql.db.QueryRowContext(ctx, getUserByIDQuery, id), "getUserByIDQuery")
}

// GetUserByUsername retrieves a single user by its unique username.
func (postgresql *PostgreSQL) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return postgresql.scanUser(postgresql.db.QueryRowContext(ctx, getUserByUsernameQuery, username), "getUserByUsernameQuery")
}

// UpdateUser overwrites the stored user with the provided field values and
// returns the updated row.
func (postgresql *PostgreSQL) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	return postgresql.scanUser(postgresql.db.QueryRowContext(ctx, updateUserQuery,
		user.ID, user.Username, user.PasswordHash, user.Email,
		user.Firstname, user.Lastname, user.BirthDate, user.Photo), "updateUserQuery")
}

// DeleteUser removes a user row. Returns sql.ErrNoRows when no row matched.
func (postgresql *PostgreSQL) DeleteUser(ctx context.Context, id string) error {
	return postgresql.execExpectingRow(ctx, deleteUserQuery, "deleteUserQuery", id)
}

// ClaimRoll is the concurrency boundary of the roll mechanic: a single
// conditional update that stamps last_roll_date only when the cooldown has
// elapsed. Two concurrent rolls for the same user cannot both claim.
func (postgresql *PostgreSQL) ClaimRoll(ctx context.Context, userID string, now, cutoff time.Time) (bool, error) {
	result, err := postgresql.db.ExecContext(ctx, claimRollQuery, userID, now, cutoff)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query claimRollQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in claimRollQuery: %s", err)
		return false, err
	}
	return rows == 1, nil
}

func (postgresql *PostgreSQL) scanUser(row *sql.Row, queryName string) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email,
		&user.Firstname, &user.Lastname, &user.BirthDate, &user.Photo, &user.LastRollDate)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to scan user in %s: %s", queryName, err)
		return user, err
	}
	return user, nil
}

// execExpectingRow runs a statement that must affect exactly one row and
// reports sql.ErrNoRows otherwise, so callers can synthesize a not-found.
func (postgresql *PostgreSQL) execExpectingRow(ctx context.Context, query, queryName string, args ...any) error {
	result, err := postgresql.db.ExecContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", queryName, err)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in %s: %s", queryName, err)
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
