package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStore struct {
	users map[string]*User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*User{}}
}

func (s *fakeStore) CreateUser(ctx context.Context, email, passwordHash, firstName, lastName string) (*User, error) {
	if _, ok := s.users[email]; ok {
		return nil, ErrEmailExists
	}
	u := &User{
		ID:           "u-" + email,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         RoleUser,
		IsActive:     true,
		PasswordHash: passwordHash,
	}
	s.users[email] = u
	return u, nil
}

func (s *fakeStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.users[email], nil
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeStore()
	uc := New(store, "test-secret", 30)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterInput{
		Email:     "jo@example.com",
		Password:  "correct-horse",
		FirstName: "Jo",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	require.Equal(t, RoleUser, user.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))

	res, err := uc.Login(ctx, LoginInput{Email: "jo@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, 30*60, res.ExpiresIn)

	tok, err := jwt.Parse(res.AccessToken, func(tk *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	require.Equal(t, user.ID, claims["sub"])
	require.Equal(t, "user", claims["typ"])
	require.Equal(t, "jo@example.com", claims["email"])
}

func TestRegisterValidation(t *testing.T) {
	uc := New(newFakeStore(), "test-secret", 30)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Email: "jo@example.com", Password: "short", FirstName: "Jo", LastName: "Doe"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Register(ctx, RegisterInput{Password: "correct-horse", FirstName: "Jo", LastName: "Doe"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := New(newFakeStore(), "test-secret", 30)
	ctx := context.Background()

	in := RegisterInput{Email: "jo@example.com", Password: "correct-horse", FirstName: "Jo", LastName: "Doe"}
	_, err := uc.Register(ctx, in)
	require.NoError(t, err)

	_, err = uc.Register(ctx, in)
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginFailures(t *testing.T) {
	store := newFakeStore()
	uc := New(store, "test-secret", 30)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Email: "jo@example.com", Password: "correct-horse", FirstName: "Jo", LastName: "Doe"})
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable.
	_, err = uc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "correct-horse"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(ctx, LoginInput{Email: "jo@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	store.users["jo@example.com"].IsActive = false
	_, err = uc.Login(ctx, LoginInput{Email: "jo@example.com", Password: "correct-horse"})
	require.ErrorIs(t, err, ErrInactiveUser)
}
