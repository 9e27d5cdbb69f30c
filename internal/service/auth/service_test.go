package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	userRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SlotService/internal/service/auth/models"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const testSecret = "test-secret"

func newTestService(repo *userRepoMock) *Service {
	return NewService(repo, testSecret, time.Hour, nopLogger{})
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := new(userRepoMock)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// Пароль хэшируется, email нормализуется
		return u.Name == "Анна" && u.Email == "anna@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Return(&domain.User{ID: 1, Name: "Анна", Email: "anna@example.com"}, nil).Once()

	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "  Анна  ",
		Email:    " Anna@Example.com ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "anna@example.com", resp.Email)

	repo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{name: "Empty name", req: &models.RegisterRequest{Name: "  ", Email: "a@b.com", Password: "secret1"}},
		{name: "Empty email", req: &models.RegisterRequest{Name: "Анна", Email: "", Password: "secret1"}},
		{name: "Email without at-sign", req: &models.RegisterRequest{Name: "Анна", Email: "not-an-email", Password: "secret1"}},
		{name: "Short password", req: &models.RegisterRequest{Name: "Анна", Email: "a@b.com", Password: "12345"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := new(userRepoMock)
			svc := newTestService(repo)

			_, err := svc.Register(context.Background(), tc.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()

	repo := new(userRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, userRepo.ErrEmailExists).Once()

	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Анна",
		Email:    "anna@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(userRepoMock)
	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{
		ID: 42, Name: "Анна", Email: "anna@example.com", PasswordHash: string(hash),
	}, nil).Once()

	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "Anna@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.User.ID)

	// Токен подписан нашим секретом и несет id пользователя в subject
	token, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "42", claims.Subject)
}

func TestLogin_UserNotFound(t *testing.T) {
	t.Parallel()

	repo := new(userRepoMock)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, userRepo.ErrUserNotFound).Once()

	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(userRepoMock)
	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{
		ID: 42, Email: "anna@example.com", PasswordHash: string(hash),
	}, nil).Once()

	svc := newTestService(repo)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestService(new(userRepoMock))

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "", Password: ""})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
