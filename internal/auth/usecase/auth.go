package usecase

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"ai-task-planner/internal/auth"
	repo "ai-task-planner/internal/auth/repository"
	"ai-task-planner/internal/model"
)

// SignIn authenticates by email and password. An unknown email is registered
// on the spot with the given password.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.SignInOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.SignInOutput{}, err
	}
	if n := utf8.RuneCountInString(input.Password); n < auth.MinPasswordLength || n > auth.MaxPasswordLength {
		return auth.SignInOutput{}, auth.ErrInvalidPassword
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn GetOneUser: %v", err)
		return auth.SignInOutput{}, err
	}

	created := false
	if u.ID == "" {
		u, err = uc.register(ctx, email, input.Password)
		if err != nil {
			return auth.SignInOutput{}, err
		}
		created = true
	} else if !uc.encrypter.CheckPasswordHash(input.Password, u.PasswordHash) {
		return auth.SignInOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.CreateToken(u.ID, u.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn CreateToken: %v", err)
		return auth.SignInOutput{}, err
	}

	return auth.SignInOutput{Token: token, User: u, Created: created}, nil
}

func (uc *implUseCase) register(ctx context.Context, email, password string) (model.User, error) {
	hash, err := uc.encrypter.HashPassword(password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.register HashPassword: %v", err)
		return model.User{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		Name:         nameFromEmail(email),
		PasswordHash: hash,
		Avatar:       model.DefaultAvatar,
	})
	if err == repo.ErrDuplicateEmail {
		// lost a race with a concurrent sign-up for the same address
		existing, getErr := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
		if getErr != nil {
			uc.l.Errorf(ctx, "uc.register GetOneUser: %v", getErr)
			return model.User{}, getErr
		}
		if existing.ID == "" {
			return model.User{}, auth.ErrInvalidCredentials
		}
		if !uc.encrypter.CheckPasswordHash(password, existing.PasswordHash) {
			return model.User{}, auth.ErrInvalidCredentials
		}
		return existing, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.register CreateUser: %v", err)
		return model.User{}, err
	}

	uc.l.Infof(ctx, "uc.register: new user %s", u.ID)
	return u, nil
}

// Me returns the signed-in user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", auth.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", auth.ErrInvalidEmail
	}
	return email, nil
}

func nameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
