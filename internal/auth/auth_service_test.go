package auth

import (
	"context"
	"testing"

	autherrors "go-groomops/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeRepo) Create(ctx context.Context, user *User) error {
	return f.createFn(ctx, user)
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

func hashedUser(t *testing.T, password, role string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &User{
		ID:       uuid.New(),
		Email:    "finance@groomops.dev",
		Name:     "Finance User",
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := hashedUser(t, "correct-horse", "finance")

	svc := NewService(&fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			assert.Equal(t, "finance@groomops.dev", email)
			return user, nil
		},
	})

	access, refresh, resp, err := svc.Login(context.Background(), "finance@groomops.dev", "correct-horse")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user.ID.String(), resp.ID)
	assert.Equal(t, "finance", resp.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := hashedUser(t, "correct-horse", "finance")

	svc := NewService(&fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
	})

	_, _, _, err := svc.Login(context.Background(), "finance@groomops.dev", "battery-staple")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{}, gorm.ErrRecordNotFound
		},
	})

	_, _, _, err := svc.Login(context.Background(), "nobody@groomops.dev", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_RefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := hashedUser(t, "correct-horse", "manager")

	svc := NewService(&fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	})

	_, refresh, _, err := svc.Login(context.Background(), user.Email, "correct-horse")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, "manager", resp.Role)
}

func TestService_RefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeRepo{})

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_Register_DefaultsToStaffRole(t *testing.T) {
	var created *User
	svc := NewService(&fakeRepo{
		createFn: func(ctx context.Context, user *User) error {
			created = user
			return nil
		},
	})

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@groomops.dev",
		Name:     "New Hire",
		Password: "long-enough-pw",
	})

	assert.NoError(t, err)
	assert.Equal(t, "staff", resp.Role)
	assert.Equal(t, "staff", created.Role)
	assert.NotEqual(t, "long-enough-pw", created.Password)
}

func TestService_GetMe_InvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetMe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}
