package otp

import (
	"errors"
	"time"
)

var (
	ErrAlreadyVerified = errors.New("code already verified")
	ErrExpired         = errors.New("code expired")
)

// OneTimeCode is a single issued verification code. The plaintext code is
// never stored; only its hash.
type OneTimeCode struct {
	id        int64
	phone     string
	codeHash  string
	expiresAt time.Time
	verified  bool
	createdAt time.Time
}

func NewOneTimeCode(phone, codeHash string, ttl time.Duration, now time.Time) *OneTimeCode {
	return &OneTimeCode{
		phone:     phone,
		codeHash:  codeHash,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}
}

func Reconstruct(id int64, phone, codeHash string, expiresAt time.Time, verified bool, createdAt time.Time) *OneTimeCode {
	return &OneTimeCode{
		id:        id,
		phone:     phone,
		codeHash:  codeHash,
		expiresAt: expiresAt,
		verified:  verified,
		createdAt: createdAt,
	}
}

func (c *OneTimeCode) WithID(id int64) *OneTimeCode {
	clone := *c
	clone.id = id
	return &clone
}

// Usable reports whether the code may still be consumed. Multiple
// outstanding codes per phone are allowed; lookup picks among usable ones.
func (c *OneTimeCode) Usable(now time.Time) bool {
	return !c.verified && now.Before(c.expiresAt)
}

func (c *OneTimeCode) Verify(now time.Time) error {
	if c.verified {
		return ErrAlreadyVerified
	}
	if !now.Before(c.expiresAt) {
		return ErrExpired
	}
	c.verified = true
	return nil
}

func (c *OneTimeCode) ID() int64            { return c.id }
func (c *OneTimeCode) Phone() string        { return c.phone }
func (c *OneTimeCode) CodeHash() string     { return c.codeHash }
func (c *OneTimeCode) ExpiresAt() time.Time { return c.expiresAt }
func (c *OneTimeCode) Verified() bool       { return c.verified }
func (c *OneTimeCode) CreatedAt() time.Time { return c.createdAt }
