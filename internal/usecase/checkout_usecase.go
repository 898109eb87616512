package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	"azmedical/internal/i18n"
	"azmedical/internal/pricing"
	repo "azmedical/internal/repository"
	"azmedical/internal/validator"
)

type CheckoutState string

const (
	CheckoutIdle       CheckoutState = "idle"
	CheckoutValidating CheckoutState = "validating"
	CheckoutProcessing CheckoutState = "processing"
	CheckoutComplete   CheckoutState = "complete"
)

// CheckoutUsecase sequences one checkout session: validate the billing
// form, run the simulated payment, record the order, clear the cart.
// Totals come from the cart snapshot taken at submission; mutations after
// that point do not affect the order.
type CheckoutUsecase struct {
	cart     repo.CartRepository
	orders   repo.OrderRepository
	prefs    repo.PreferencesRepository
	payments PaymentProcessor
	numbers  *OrderNumberGenerator
	pricing  pricing.Config
	clock    Clock
	log      *zap.Logger

	mu    sync.Mutex
	state CheckoutState
}

func NewCheckoutUsecase(
	cart repo.CartRepository,
	orders repo.OrderRepository,
	prefs repo.PreferencesRepository,
	payments PaymentProcessor,
	numbers *OrderNumberGenerator,
	cfg pricing.Config,
	clock Clock,
	log *zap.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:     cart,
		orders:   orders,
		prefs:    prefs,
		payments: payments,
		numbers:  numbers,
		pricing:  cfg,
		clock:    clock,
		log:      log,
		state:    CheckoutIdle,
	}
}

// CheckoutConfirmation is the user-visible result of a completed checkout.
// Message is rendered in the active display language.
type CheckoutConfirmation struct {
	OrderNumber string
	Total       decimal.Decimal
	Message     string
}

func (u *CheckoutUsecase) State() CheckoutState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Reset starts a new checkout cycle after Complete.
func (u *CheckoutUsecase) Reset() {
	u.setState(CheckoutIdle)
}

// Submit runs the session to completion. Validation failures and payment
// rejections return the machine to Idle without touching any store; once
// the payment succeeds the order is recorded and the cart cleared.
func (u *CheckoutUsecase) Submit(ctx context.Context, billing model.BillingInfo, method model.PaymentMethod) (CheckoutConfirmation, error) {
	items := u.cart.Get()
	if len(items) == 0 {
		return CheckoutConfirmation{}, ErrCartEmpty
	}

	u.setState(CheckoutValidating)
	if fields := validator.ValidateBilling(billing, method); !fields.Valid() {
		u.setState(CheckoutIdle)
		return CheckoutConfirmation{}, &ValidationError{Fields: fields}
	}

	u.setState(CheckoutProcessing)
	totals := pricing.ComputeTotals(items, u.pricing)

	if err := u.payments.Process(ctx, totals.Total, method); err != nil {
		u.setState(CheckoutIdle)
		return CheckoutConfirmation{}, fmt.Errorf("%w: %v", ErrPaymentRejected, err)
	}

	now := u.clock.Now()
	number := u.numbers.Next(now)

	u.orders.Record(model.Order{
		OrderNumber:   number,
		Items:         items,
		Total:         totals.Total,
		PaymentMethod: method,
		Billing:       billing,
		Date:          now.UTC(),
	})
	u.cart.Clear()
	u.setState(CheckoutComplete)

	u.log.Info("checkout complete",
		zap.String("order_number", number),
		zap.String("total", totals.Total.String()),
		zap.String("payment_method", string(method)),
		zap.Int("line_count", len(items)),
	)

	p := i18n.Printer(u.prefs.Language())
	return CheckoutConfirmation{
		OrderNumber: number,
		Total:       totals.Total,
		Message:     p.Sprintf("checkout.success") + " " + p.Sprintf("checkout.order_number", number),
	}, nil
}

func (u *CheckoutUsecase) setState(s CheckoutState) {
	u.mu.Lock()
	u.state = s
	u.mu.Unlock()
}
