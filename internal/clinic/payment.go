package clinic

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentProcessed PaymentStatus = "processed"
)

// Payment represents one amount owed for an appointment. The amount is fixed
// at construction from the appointment's service cost.
type Payment struct {
	ID     uuid.UUID
	Amount float64
	Date   time.Time

	mu     sync.Mutex
	status PaymentStatus
}

func NewPayment(amount float64) *Payment {
	return &Payment{
		ID:     uuid.New(),
		Amount: amount,
		Date:   time.Now(),
		status: PaymentPending,
	}
}

func (p *Payment) Status() PaymentStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// MarkProcessed moves the payment from pending to processed. The transition
// happens at most once.
func (p *Payment) MarkProcessed() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != PaymentPending {
		return ErrInvalidTransition
	}
	p.status = PaymentProcessed
	return nil
}
