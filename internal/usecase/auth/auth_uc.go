package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInactiveUser       = errors.New("user inactive")
	ErrInvalidInput       = errors.New("invalid input")
)

const RoleUser = "USER"

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	IsActive     bool   `json:"isActive"`
	PasswordHash string `json:"-"`
}

type Store interface {
	// CreateUser returns ErrEmailExists when the email is already taken.
	CreateUser(ctx context.Context, email, passwordHash, firstName, lastName string) (*User, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}

type Usecase struct {
	store     Store
	jwtSecret []byte
	expMin    int
}

func New(store Store, jwtSecret string, expiresMinutes int) *Usecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &Usecase{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		expMin:    expiresMinutes,
	}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Email == "" || len(in.Password) < 8 || in.FirstName == "" || in.LastName == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return u.store.CreateUser(ctx, in.Email, string(hash), in.FirstName, in.LastName)
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := u.store.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Hide whether the email exists
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	exp := now.Add(time.Duration(u.expMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"typ":   "user",
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: signed,
		ExpiresIn:   u.expMin * 60,
	}, nil
}
