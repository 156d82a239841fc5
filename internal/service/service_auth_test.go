package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/store"
	"github.com/rkhalikov/go-task-keeper/internal/validators"
	"github.com/rkhalikov/go-task-keeper/models"
)

func newAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, validators.NewTaskValidator(), logger.Nop())
}

func TestAuthService_Register(t *testing.T) {
	var stored models.User

	repo := &fakeUserRepository{
		createUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}

	registered, err := newAuthService(repo).Register(context.Background(), models.Credentials{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "alice", stored.Username)

	// The plaintext must never reach the repository.
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc := newAuthService(&fakeUserRepository{})

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFunc: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	_, err := newAuthService(repo).Register(context.Background(), models.Credentials{
		Username: "alice",
		Password: "s3cret",
	})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findUserByUsernameFunc: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	svc := newAuthService(repo)

	user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)

	_, err = svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByUsernameFunc: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	_, err := newAuthService(repo).Login(context.Background(), models.Credentials{
		Username: "ghost",
		Password: "whatever",
	})

	// Unknown username and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
