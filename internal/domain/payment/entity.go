package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMethod  = errors.New("payment method is required")
	ErrZeroAmount   = errors.New("payment amount cannot be zero")
	ErrChargeAmount = errors.New("charge amount must be positive")
	ErrRefundAmount = errors.New("refund amount must be negative")
)

type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

// Payment is one money movement against a booking: a positive charge or a
// negative refund. A booking has at most one successful charge; a
// cancellation appends the offsetting refund row.
type Payment struct {
	id             int64
	bookingID      int64
	userID         int64
	amount         int64
	transactionRef string
	method         string
	status         Status
	createdAt      time.Time
}

func NewCharge(bookingID, userID, amount int64, method string, now time.Time) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrChargeAmount
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, ErrEmptyMethod
	}

	return &Payment{
		bookingID:      bookingID,
		userID:         userID,
		amount:         amount,
		transactionRef: uuid.NewString(),
		method:         method,
		status:         StatusSuccess,
		createdAt:      now,
	}, nil
}

func NewRefund(bookingID, userID, amount int64, method string, now time.Time) (*Payment, error) {
	if amount >= 0 {
		return nil, ErrRefundAmount
	}

	return &Payment{
		bookingID:      bookingID,
		userID:         userID,
		amount:         amount,
		transactionRef: uuid.NewString(),
		method:         method,
		status:         StatusRefunded,
		createdAt:      now,
	}, nil
}

func Reconstruct(id, bookingID, userID, amount int64, transactionRef, method string, status Status, createdAt time.Time) *Payment {
	return &Payment{
		id:             id,
		bookingID:      bookingID,
		userID:         userID,
		amount:         amount,
		transactionRef: transactionRef,
		method:         method,
		status:         status,
		createdAt:      createdAt,
	}
}

func (p *Payment) WithID(id int64) *Payment {
	clone := *p
	clone.id = id
	return &clone
}

func (p *Payment) ID() int64              { return p.id }
func (p *Payment) BookingID() int64       { return p.bookingID }
func (p *Payment) UserID() int64          { return p.userID }
func (p *Payment) Amount() int64          { return p.amount }
func (p *Payment) TransactionRef() string { return p.transactionRef }
func (p *Payment) Method() string         { return p.method }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
