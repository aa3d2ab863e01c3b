package service

import (
	"context"
	"fmt"
	"time"

	"github.com/josebazania/restaurantepos/internal/config"
	"github.com/josebazania/restaurantepos/internal/dto"
	"github.com/josebazania/restaurantepos/internal/model"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	// Current returns the stored session identity.
	Current(ctx context.Context) (model.User, error)
}

type rosterEntry struct {
	user model.User
	hash []byte
}

type authService struct {
	st     *repository.State
	events *Notifier
	cfg    *config.Config
	roster map[string]rosterEntry
}

// NewAuthService hashes the static roster once so plaintext seed credentials
// are only compared through bcrypt.
func NewAuthService(st *repository.State, events *Notifier, cfg *config.Config, users []model.User) (AuthService, error) {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	roster := make(map[string]rosterEntry, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", u.Username, err)
		}
		u.Password = ""
		roster[u.Username] = rosterEntry{user: u, hash: hash}
	}
	return &authService{st: st, events: events, cfg: cfg, roster: roster}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	entry, ok := s.roster[req.Username]
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.hash, []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.generateToken(entry.user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	u := entry.user
	err = s.st.Commit(func() error { return s.st.Identity.Save(ctx, u) },
		func() { s.events.Publish(ctx, model.Event{Kind: model.EventIdentityChanged, EntityID: u.ID, User: &u}) })
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        dto.NewUserResponse(u),
	}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.st.Commit(func() error { return s.st.Identity.Clear(ctx) },
		func() { s.events.Publish(ctx, model.Event{Kind: model.EventIdentityChanged}) })
}

func (s *authService) Current(_ context.Context) (model.User, error) {
	var (
		u  model.User
		ok bool
	)
	_ = s.st.Run(func() error {
		u, ok = s.st.Identity.Current()
		return nil
	})
	if !ok {
		return model.User{}, model.ErrNotLoggedIn
	}
	return u, nil
}

func (s *authService) generateToken(user model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"rol":      string(user.Role),
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
