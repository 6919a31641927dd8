//go:build unit || e2e

package builder

import (
	"time"

	"parkspot/internal/domain/user"
)

type UserBuilder struct {
	Phone   string
	Name    string
	IsAdmin bool
	Now     time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Phone:   "9876543210",
		Name:    "Test Driver",
		IsAdmin: false,
		Now:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(b.Phone, b.Name, b.IsAdmin, b.Now)
}

// Fluent builder methods
func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.Phone = phone
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.IsAdmin = true
	return b
}
