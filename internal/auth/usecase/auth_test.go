package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ai-task-planner/internal/auth"
	repo "ai-task-planner/internal/auth/repository"
	"ai-task-planner/internal/auth/usecase"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/encrypter"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

type mockRepo struct {
	users     map[string]model.User
	createErr error
	created   []repo.CreateUserOptions

	// returned by GetOneUser once CreateUser has been attempted
	getErrAfterCreate error
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]model.User{}}
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return model.User{}, m.createErr
	}
	u := model.User{ID: "u-" + opt.Email, Email: opt.Email, Name: opt.Name, PasswordHash: opt.PasswordHash, Avatar: opt.Avatar}
	m.users[opt.Email] = u
	return u, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getErrAfterCreate != nil && len(m.created) > 0 {
		return model.User{}, m.getErrAfterCreate
	}
	for _, u := range m.users {
		if (opt.Email == "" || u.Email == opt.Email) && (opt.ID == "" || u.ID == opt.ID) {
			return u, nil
		}
	}
	return model.User{}, nil
}

func setup(t *testing.T) (*mockRepo, auth.UseCase, encrypter.Encrypter, scope.Manager) {
	t.Helper()
	r := newMockRepo()
	enc := encrypter.New(bcrypt.MinCost)
	jwt := scope.New("secret", time.Hour)
	return r, usecase.New(log.NewNop(), r, jwt, enc), enc, jwt
}

func TestSignInValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   auth.SignInInput
		wantErr error
	}{
		{name: "empty email", input: auth.SignInInput{Email: " ", Password: "password1"}, wantErr: auth.ErrInvalidEmail},
		{name: "malformed email", input: auth.SignInInput{Email: "alice.example.com", Password: "password1"}, wantErr: auth.ErrInvalidEmail},
		{name: "display name form", input: auth.SignInInput{Email: "Alice <alice@example.com>", Password: "password1"}, wantErr: auth.ErrInvalidEmail},
		{name: "short password", input: auth.SignInInput{Email: "alice@example.com", Password: "1234567"}, wantErr: auth.ErrInvalidPassword},
		{name: "long password", input: auth.SignInInput{Email: "alice@example.com", Password: "123456789012345678901234567890123"}, wantErr: auth.ErrInvalidPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, uc, _, _ := setup(t)
			_, err := uc.SignIn(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
			if len(r.created) != 0 {
				t.Error("no user should be created on invalid input")
			}
		})
	}
}

func TestSignInRegistersUnknownEmail(t *testing.T) {
	r, uc, enc, jwt := setup(t)

	out, err := uc.SignIn(context.Background(), auth.SignInInput{Email: " Alice@Example.com ", Password: "password1"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !out.Created {
		t.Error("expected account to be created")
	}
	if out.User.Email != "alice@example.com" || out.User.Name != "alice" || out.User.Avatar != model.DefaultAvatar {
		t.Errorf("unexpected user: %+v", out.User)
	}
	if !enc.CheckPasswordHash("password1", r.created[0].PasswordHash) {
		t.Error("password must be stored hashed")
	}

	payload, err := jwt.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.UserID != out.User.ID || payload.Username != "alice@example.com" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestSignInExistingUser(t *testing.T) {
	r, uc, _, _ := setup(t)
	ctx := context.Background()

	if _, err := uc.SignIn(ctx, auth.SignInInput{Email: "bob@example.com", Password: "password1"}); err != nil {
		t.Fatalf("first SignIn: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		out, err := uc.SignIn(ctx, auth.SignInInput{Email: "bob@example.com", Password: "password1"})
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if out.Created || out.Token == "" {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(r.created) != 1 {
			t.Errorf("expected a single registration, got %d", len(r.created))
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.SignIn(ctx, auth.SignInInput{Email: "bob@example.com", Password: "password2"})
		if err != auth.ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestSignInStorageFailure(t *testing.T) {
	r, uc, _, _ := setup(t)
	r.createErr = repo.ErrFailedToInsert

	_, err := uc.SignIn(context.Background(), auth.SignInInput{Email: "carol@example.com", Password: "password1"})
	if err != repo.ErrFailedToInsert {
		t.Errorf("expected ErrFailedToInsert, got %v", err)
	}
}

func TestSignInDuplicateRace(t *testing.T) {
	t.Run("lookup failure surfaces", func(t *testing.T) {
		r, uc, _, _ := setup(t)
		r.createErr = repo.ErrDuplicateEmail
		r.getErrAfterCreate = repo.ErrFailedToGet

		_, err := uc.SignIn(context.Background(), auth.SignInInput{Email: "dave@example.com", Password: "password1"})
		if err != repo.ErrFailedToGet {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})

	t.Run("user vanished", func(t *testing.T) {
		r, uc, _, _ := setup(t)
		r.createErr = repo.ErrDuplicateEmail

		_, err := uc.SignIn(context.Background(), auth.SignInInput{Email: "dave@example.com", Password: "password1"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestMe(t *testing.T) {
	r, uc, _, _ := setup(t)
	r.users["dave@example.com"] = model.User{ID: "u-dave", Email: "dave@example.com"}

	u, err := uc.Me(context.Background(), model.Scope{UserID: "u-dave"})
	if err != nil || u.Email != "dave@example.com" {
		t.Errorf("unexpected result: %+v, %v", u, err)
	}

	if _, err := uc.Me(context.Background(), model.Scope{UserID: "ghost"}); err != auth.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
