package merge

import "time"

const (
	defaultCurrency        = "USD"
	defaultReceiptLeadDays = 30
)

// Option configures a Merge call.
type Option func(*config)

type config struct {
	now             func() time.Time
	currency        string
	receiptLeadDays int
}

func newConfig(options []Option) config {
	cfg := config{
		now:             time.Now,
		currency:        defaultCurrency,
		receiptLeadDays: defaultReceiptLeadDays,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithClock overrides the time source used for the expected receipt date.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithCurrency overrides the currency code written next to every amount.
func WithCurrency(code string) Option {
	return func(cfg *config) {
		if code != "" {
			cfg.currency = code
		}
	}
}

// WithReceiptLeadDays sets how many days after today the order is expected.
func WithReceiptLeadDays(days int) Option {
	return func(cfg *config) {
		if days > 0 {
			cfg.receiptLeadDays = days
		}
	}
}
