package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/events"
	"github.com/carrierx/carrierx/internal/hash"
	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/token"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Secret   []byte
}

// AuthResult pairs the stored user with a freshly signed session token.
type AuthResult struct {
	User  *models.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if email == "" || password == "" {
		return nil, ErrValidation
	}

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_failed", "status", 500, "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: pwHash,
		Name:         name,
		Role:         models.RoleUser,
		Skills:       models.StringList{},
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		// The unique index on email is the authoritative guard; the
		// earlier lookup only avoids a constraint round-trip.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		l.Error("register_failed", "status", 500, "error", err)
		return nil, err
	}

	tokenStr, err := s.signFor(user)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, user.ID, map[string]any{
		"type":   "user_registered",
		"userId": user.ID,
		"email":  user.Email,
	})

	l.Info("register_successful", "user_id", user.ID)
	return &AuthResult{User: user, Token: tokenStr}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	tokenStr, err := s.signFor(user)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, user.ID, map[string]any{
		"type":   "user_logged_in",
		"userId": user.ID,
		"email":  user.Email,
	})

	l.Info("login_successful", "user_id", user.ID)
	return &AuthResult{User: user, Token: tokenStr}, nil
}

// Me refetches the full profile; the token alone carries only id, email
// and role.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) signFor(user *models.User) (string, error) {
	return token.Sign(token.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, s.Secret)
}

func (s *AuthService) publish(ctx context.Context, topic string, key uuid.UUID, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pubCtx, topic, key.String(), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "topic", topic, "error", err)
	}
}
