package storage

import (
	"encoding/json"
	"errors"
	"time"

	"greensentinel/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// FeedChannel is the Redis Pub/Sub channel carrying complaint feed events.
const FeedChannel = "complaints:events"

const (
	verificationKeyPrefix  = "verify:"
	passwordResetKeyPrefix = "pwreset:"
)

// ErrTokenNotFound is returned for an unknown or expired verification token.
var ErrTokenNotFound = errors.New("verification token not found")

// PublishComplaintEvent pushes a feed event to Redis Pub/Sub so every
// server instance can fan it out to its WebSocket subscribers.
func (s *Service) PublishComplaintEvent(event models.ComplaintEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, FeedChannel, string(payload)).Err()
}

// SubscribeComplaintEvents opens a Pub/Sub subscription on the feed channel.
// The caller owns the subscription and must Close it.
func (s *Service) SubscribeComplaintEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, FeedChannel)
}

// StoreVerificationToken maps an email-verification token to a user for ttl.
func (s *Service) StoreVerificationToken(token, uid string, ttl time.Duration) error {
	return s.Redis.Set(s.Ctx, verificationKeyPrefix+token, uid, ttl).Err()
}

// LookupVerificationToken resolves a token back to the uid it was issued for.
func (s *Service) LookupVerificationToken(token string) (string, error) {
	uid, err := s.Redis.Get(s.Ctx, verificationKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (s *Service) DeleteVerificationToken(token string) error {
	return s.Redis.Del(s.Ctx, verificationKeyPrefix+token).Err()
}

// StorePasswordResetToken maps a password-reset token to a user for ttl.
func (s *Service) StorePasswordResetToken(token, uid string, ttl time.Duration) error {
	return s.Redis.Set(s.Ctx, passwordResetKeyPrefix+token, uid, ttl).Err()
}

// LookupPasswordResetToken resolves a reset token back to its uid.
func (s *Service) LookupPasswordResetToken(token string) (string, error) {
	uid, err := s.Redis.Get(s.Ctx, passwordResetKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (s *Service) DeletePasswordResetToken(token string) error {
	return s.Redis.Del(s.Ctx, passwordResetKeyPrefix+token).Err()
}
