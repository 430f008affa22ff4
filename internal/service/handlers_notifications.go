package service

import (
	"context"
	"net/http"

	"cardex/internal/models"
)

// createNotificationHandler posts an inbox entry.
func (handlers *handlers) createNotificationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var createRequest models.CreateNotificationRequest
	if !readJSONBody(res, req, &createRequest) {
		return
	}

	notif, err := handlers.app.ProcessCreateNotification(ctx, createRequest)
	if err != nil {
		writeProcessError(res, err, "notification does not exist")
		return
	}

	writeJSONResponse(res, notif, http.StatusCreated)
}

// getNotificationsHandler returns every notification.
func (handlers *handlers) getNotificationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	notifs, err := handlers.app.ProcessGetNotifications(ctx)
	if err != nil {
		writeProcessError(res, err, "no notifications exist")
		return
	}

	writeJSONResponse(res, notifs, http.StatusOK)
}

// getNotificationHandler returns one notification by id.
func (handlers *handlers) getNotificationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	notif, err := handlers.app.ProcessGetNotification(ctx, id)
	if err != nil {
		writeProcessError(res, err, "notification with provided id does not exist")
		return
	}

	writeJSONResponse(res, notif, http.StatusOK)
}

// getNotificationsByUserHandler returns one user's inbox, newest first.
func (handlers *handlers) getNotificationsByUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	idUser, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	notifs, err := handlers.app.ProcessGetNotificationsByUser(ctx, idUser)
	if err != nil {
		writeProcessError(res, err, "user with provided id has no notifications")
		return
	}

	writeJSONResponse(res, notifs, http.StatusOK)
}

// patchNotificationHandler applies the provided fields to a notification.
func (handlers *handlers) patchNotificationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	var patchRequest models.PatchNotificationRequest
	if !readJSONBody(res, req, &patchRequest) {
		return
	}

	notif, err := handlers.app.ProcessPatchNotification(ctx, id, patchRequest)
	if err != nil {
		writeProcessError(res, err, "notification with provided id does not exist")
		return
	}

	writeJSONResponse(res, notif, http.StatusOK)
}

// deleteNotificationHandler removes one notification.
func (handlers *handlers) deleteNotificationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.app.ProcessDeleteNotification(ctx, id); err != nil {
		writeProcessError(res, err, "notification with provided id does not exist")
		return
	}

	res.WriteHeader(http.StatusOK)
}
