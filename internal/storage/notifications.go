package storage

import (
	"context"

	"cardex/internal/models"
)

const (
	createNotificationQuery = `INSERT INTO content.notifications (id, id_user, notif_type, content, read, accepted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING creation_time;`
	getNotificationsQuery = `SELECT id, id_user, notif_type, content, read, accepted, creation_time
		FROM content.notifications;`
	getNotificationByIDQuery = `SELECT id, id_user, notif_type, content, read, accepted, creation_time
		FROM content.notifications WHERE id = $1;`
	getNotificationsByUserQuery = `SELECT id, id_user, notif_type, content, read, accepted, creation_time
		FROM content.notifications WHERE id_user = $1 ORDER BY creation_time DESC;`
	updateNotificationQuery = `UPDATE content.notifications
		SET notif_type = $2, content = $3, read = $4, accepted = $5
		WHERE id = $1
		RETURNING id, id_user, notif_type, content, read, accepted, creation_time;`
	deleteNotificationQuery = `DELETE FROM content.notifications WHERE id = $1;`
)

// CreateNotification inserts a new inbox entry.
func (postgresql *PostgreSQL) CreateNotification(ctx context.Context, notif *models.Notification) (*models.Notification, error) {
	notif.ID = newObjectID()

	err := postgresql.db.QueryRowContext(ctx, createNotificationQuery,
		notif.ID, notif.IDUser, notif.Type, notif.Content, notif.Read, notif.Accepted).Scan(&notif.CreationTime)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createNotificationQuery: %s", err)
		return notif, err
	}
	return notif, nil
}

// GetNotifications returns every notification.
func (postgresql *PostgreSQL) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return postgresql.queryNotifications(ctx, getNotificationsQuery, "getNotificationsQuery")
}

// GetNotificationByID retrieves a single notification. Returns sql.ErrNoRows
// when absent.
func (postgresql *PostgreSQL) GetNotificationByID(ctx context.Context, id string) (*models.Notification, error) {
	notif := &models.Notification{}
	err := postgresql.db.QueryRowContext(ctx, getNotificationByIDQuery, id).Scan(
		&notif.ID, &notif.IDUser, &notif.Type, &notif.Content, &notif.Read, &notif.Accepted, &notif.CreationTime)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getNotificationByIDQuery: %s", err)
		return notif, err
	}
	return notif, nil
}

// GetNotificationsByUserID returns the inbox of one user, newest first.
func (postgresql *PostgreSQL) GetNotificationsByUserID(ctx context.Context, idUser string) ([]models.Notification, error) {
	return postgresql.queryNotifications(ctx, getNotificationsByUserQuery, "getNotificationsByUserQuery", idUser)
}

// UpdateNotification overwrites the mutable fields of a notification.
func (postgresql *PostgreSQL) UpdateNotification(ctx context.Context, notif *models.Notification) (*models.Notification, error) {
	err := postgresql.db.QueryRowContext(ctx, updateNotificationQuery,
		notif.ID, notif.Type, notif.Content, notif.Read, notif.Accepted).Scan(
		&notif.ID, &notif.IDUser, &notif.Type, &notif.Content, &notif.Read, &notif.Accepted, &notif.CreationTime)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateNotificationQuery: %s", err)
		return notif, err
	}
	return notif, nil
}

// DeleteNotification removes a notification. Returns sql.ErrNoRows when no
// row matched.
func (postgresql *PostgreSQL) DeleteNotification(ctx context.Context, id string) error {
	return postgresql.execExpectingRow(ctx, deleteNotificationQuery, "deleteNotificationQuery", id)
}

func (postgresql *PostgreSQL) queryNotifications(ctx context.Context, query, queryName string, args ...any) ([]models.Notification, error) {
	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", queryName, err)
		return nil, err
	}
	defer rows.Close()

	const initialNotificationCapacity = 8
	notifs := make([]models.Notification, 0, initialNotificationCapacity)

	for rows.Next() {
		notif := models.Notification{}
		if err := rows.Scan(&notif.ID, &notif.IDUser, &notif.Type, &notif.Content,
			&notif.Read, &notif.Accepted, &notif.CreationTime); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan notification in %s: %s", queryName, err)
			return nil, err
		}
		notifs = append(notifs, notif)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in %s: %s", queryName, err)
		return notifs, err
	}

	return notifs, nil
}
