package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"azmedical/internal/domain/model"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// PaymentProcessor stands in for the payment gateway. There is no real
// gateway anywhere in this system; the mock below is the only production
// implementation.
type PaymentProcessor interface {
	Process(ctx context.Context, amount decimal.Decimal, method model.PaymentMethod) error
}

// MockPaymentProcessor waits the configured delay and reports success.
// Fail, when set, lets tests reject a payment deterministically.
type MockPaymentProcessor struct {
	Delay time.Duration
	Fail  func(amount decimal.Decimal, method model.PaymentMethod) error
}

func (p *MockPaymentProcessor) Process(ctx context.Context, amount decimal.Decimal, method model.PaymentMethod) error {
	if err := wait(ctx, p.Delay); err != nil {
		return err
	}
	if p.Fail != nil {
		return p.Fail(amount, method)
	}
	return nil
}

// wait sleeps for d, honoring context cancellation.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
