package app

import (
	"context"

	"cardex/internal/models"
)

// ProcessCreateNotification posts an inbox entry.
func (app *App) ProcessCreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	if req.IDUser == "" || req.Type == "" {
		return nil, ErrMissingNotificationFields
	}

	notif := &models.Notification{
		IDUser:   req.IDUser,
		Type:     req.Type,
		Content:  req.Content,
		Read:     req.Read,
		Accepted: req.Accepted,
	}

	return app.db.CreateNotification(ctx, notif)
}

// ProcessGetNotifications retrieves every notification.
func (app *App) ProcessGetNotifications(ctx context.Context) ([]models.Notification, error) {
	return app.db.GetNotifications(ctx)
}

// ProcessGetNotification retrieves one notification by id.
func (app *App) ProcessGetNotification(ctx context.Context, id string) (*models.Notification, error) {
	return app.db.GetNotificationByID(ctx, id)
}

// ProcessGetNotificationsByUser retrieves one user's inbox, newest first.
func (app *App) ProcessGetNotificationsByUser(ctx context.Context, idUser string) ([]models.Notification, error) {
	return app.db.GetNotificationsByUserID(ctx, idUser)
}

// ProcessPatchNotification applies the provided fields to a notification.
// Nil request fields keep their stored values.
func (app *App) ProcessPatchNotification(ctx context.Context, id string, req models.PatchNotificationRequest) (*models.Notification, error) {
	notif, err := app.db.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		notif.Type = *req.Type
	}
	if req.Content != nil {
		notif.Content = *req.Content
	}
	if req.Read != nil {
		notif.Read = *req.Read
	}
	if req.Accepted != nil {
		notif.Accepted = *req.Accepted
	}

	return app.db.UpdateNotification(ctx, notif)
}

// ProcessDeleteNotification removes one notification.
func (app *App) ProcessDeleteNotification(ctx context.Context, id string) error {
	return app.db.DeleteNotification(ctx, id)
}
