package app

import (
	"context"
	"time"

	"cardex/internal/models"
	"cardex/internal/pkg/security"
)

// birthDateLayouts lists the accepted birth date formats, most common first.
var birthDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseBirthDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidBirthDate
}

// ProcessCreateUser registers a new user with a bcrypt-hashed password.
// Username and email collisions surface as unique violations from the storage
// layer.
func (app *App) ProcessCreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, ErrMissingUserFields
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: security.HashPassword(req.Password),
		Email:        req.Email,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		BirthDate:    birthDate,
		Photo:        req.Photo,
	}

	return app.db.CreateUser(ctx, user)
}

// ProcessGetUser retrieves one user by id.
func (app *App) ProcessGetUser(ctx context.Context, id string) (*models.User, error) {
	return app.db.GetUserByID(ctx, id)
}

// ProcessUpdateUser overwrites the user's profile fields. Empty request fields
// keep their stored values; a non-empty password is re-hashed.
func (app *App) ProcessUpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := app.db.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		user.PasswordHash = security.HashPassword(req.Password)
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Firstname != "" {
		user.Firstname = req.Firstname
	}
	if req.Lastname != "" {
		user.Lastname = req.Lastname
	}
	if req.Photo != "" {
		user.Photo = req.Photo
	}
	if req.BirthDate != "" {
		birthDate, err := parseBirthDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = birthDate
	}

	return app.db.UpdateUser(ctx, user)
}

// ProcessDeleteUser removes a user by id.
func (app *App) ProcessDeleteUser(ctx context.Context, id string) error {
	return app.db.DeleteUser(ctx, id)
}
