package notification

import (
	"errors"
	"time"
)

var ErrInvalidKind = errors.New("invalid notification kind")

// Kind is a closed set; consumers switch over it exhaustively instead of
// comparing free-form strings.
type Kind string

const (
	KindBooking Kind = "booking"
	KindPayment Kind = "payment"
	KindSlot    Kind = "slot"
	KindAdmin   Kind = "admin"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBooking, KindPayment, KindSlot, KindAdmin:
		return true
	default:
		return false
	}
}

// Notification is append-only except for the read flag.
type Notification struct {
	id        int64
	userID    int64
	title     string
	message   string
	kind      Kind
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID int64, title, message string, kind Kind, now time.Time) (*Notification, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	return &Notification{
		userID:    userID,
		title:     title,
		message:   message,
		kind:      kind,
		createdAt: now,
	}, nil
}

func Reconstruct(id, userID int64, title, message string, kind Kind, isRead bool, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		title:     title,
		message:   message,
		kind:      kind,
		isRead:    isRead,
		createdAt: createdAt,
	}
}

func (n *Notification) WithID(id int64) *Notification {
	clone := *n
	clone.id = id
	return &clone
}

func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) ID() int64            { return n.id }
func (n *Notification) UserID() int64        { return n.userID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Kind() Kind           { return n.kind }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
