package user

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidPhone = errors.New("phone must be exactly 10 digits")
	ErrNameTooLong  = errors.New("name exceeds maximum length")
)

const MaxNameLength = 64

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

type User struct {
	id        int64
	phone     string
	name      string
	isAdmin   bool
	createdAt time.Time
}

func NewUser(phone, name string, isAdmin bool, now time.Time) (*User, error) {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	name = strings.TrimSpace(name)
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &User{
		phone:     phone,
		name:      name,
		isAdmin:   isAdmin,
		createdAt: now,
	}, nil
}

func Reconstruct(id int64, phone, name string, isAdmin bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		phone:     phone,
		name:      name,
		isAdmin:   isAdmin,
		createdAt: createdAt,
	}
}

// WithID returns a copy carrying the store-assigned identifier.
func (u *User) WithID(id int64) *User {
	clone := *u
	clone.id = id
	return &clone
}

func (u *User) ID() int64            { return u.id }
func (u *User) Phone() string        { return u.phone }
func (u *User) Name() string         { return u.name }
func (u *User) IsAdmin() bool        { return u.isAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
