package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/streamscore/scoreboard-hub/internal/lib/jwt"
	"github.com/streamscore/scoreboard-hub/internal/lib/password"
	"github.com/streamscore/scoreboard-hub/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newMaker() *jwt.MakerImpl {
	return jwt.NewJWTMaker("test-secret", time.Hour)
}

func TestService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		// Пароль должен быть захэширован, роль — USER по умолчанию.
		return u.Email == "new@example.com" &&
			u.Role == models.RoleUser &&
			u.PasswordHash != "secret123" &&
			password.CompareHash(u.PasswordHash, "secret123") == nil
	})).Return("user-id-1", nil).Once()

	service := New(repo, newMaker())
	id, err := service.Register(context.Background(), "new@example.com", "New User", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "user-id-1", id)
	repo.AssertExpectations(t)
}

func TestService_Login(t *testing.T) {
	hashed, err := password.GetHash("secret123")
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}

	t.Run("успешный вход возвращает валидный токен", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(storedUser, nil).Once()

		service := New(repo, newMaker())
		token, user, err := service.Login(context.Background(), "user@example.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, storedUser, user)

		identity, err := service.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "u1", identity.UserID)
		assert.Equal(t, models.RoleUser, identity.Role)
	})

	t.Run("неверный пароль дает ErrInvalidCredentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(storedUser, nil).Once()

		service := New(repo, newMaker())
		token, user, err := service.Login(context.Background(), "user@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("неизвестный email дает ErrInvalidCredentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
			Return(nil, assert.AnError).Once()

		service := New(repo, newMaker())
		_, _, err := service.Login(context.Background(), "ghost@example.com", "secret123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := New(new(MockUserRepository), newMaker())

	t.Run("битый токен отклоняется", func(t *testing.T) {
		identity, err := service.ValidateToken(context.Background(), "not-a-jwt")
		assert.Error(t, err)
		assert.Nil(t, identity)
	})

	t.Run("токен с чужой подписью отклоняется", func(t *testing.T) {
		otherMaker := jwt.NewJWTMaker("other-secret", time.Hour)
		token, err := otherMaker.GenerateToken("u1", "user@example.com", models.RoleUser, false)
		require.NoError(t, err)

		identity, err := service.ValidateToken(context.Background(), token)
		assert.Error(t, err)
		assert.Nil(t, identity)
	})
}
