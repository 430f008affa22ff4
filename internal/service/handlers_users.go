package service

import (
	"context"
	"net/http"

	"cardex/internal/models"
)

// loginHandler handles authentication requests. It verifies the credentials
// via the app layer and returns the user's public fields plus a bearer token.
func (handlers *handlers) loginHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var loginRequest models.LoginRequest
	if !readJSONBody(res, req, &loginRequest) {
		return
	}

	loginResponse, err := handlers.app.ProcessLogin(ctx, loginRequest)
	if err != nil {
		writeProcessError(res, err, "user with provided username does not exist")
		return
	}

	writeJSONResponse(res, loginResponse, http.StatusOK)
}

// createUserHandler registers a new user.
func (handlers *handlers) createUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var createRequest models.CreateUserRequest
	if !readJSONBody(res, req, &createRequest) {
		return
	}

	user, err := handlers.app.ProcessCreateUser(ctx, createRequest)
	if err != nil {
		writeProcessError(res, err, "user does not exist")
		return
	}

	writeJSONResponse(res, user, http.StatusCreated)
}

// getUserHandler returns one user by id.
func (handlers *handlers) getUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	user, err := handlers.app.ProcessGetUser(ctx, id)
	if err != nil {
		writeProcessError(res, err, "user with provided id does not exist")
		return
	}

	writeJSONResponse(res, user, http.StatusOK)
}

// updateUserHandler overwrites a user's profile fields.
func (handlers *handlers) updateUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	var updateRequest models.UpdateUserRequest
	if !readJSONBody(res, req, &updateRequest) {
		return
	}

	user, err := handlers.app.ProcessUpdateUser(ctx, id, updateRequest)
	if err != nil {
		writeProcessError(res, err, "user with provided id does not exist")
		return
	}

	writeJSONResponse(res, user, http.StatusOK)
}

// deleteUserHandler removes a user.
func (handlers *handlers) deleteUserHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := objectIDParam(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.app.ProcessDeleteUser(ctx, id); err != nil {
		writeProcessError(res, err, "user with provided id does not exist")
		return
	}

	res.WriteHeader(http.StatusOK)
}
