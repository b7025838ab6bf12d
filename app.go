package rentkit

import (
	"io"
	"log/slog"

	"github.com/rentvehicle/rentkit/pkg/account"
	"github.com/rentvehicle/rentkit/pkg/booking"
	"github.com/rentvehicle/rentkit/pkg/catalog"
	"github.com/rentvehicle/rentkit/pkg/notify"
)

// App is the application context: the shared stores, the notification hub,
// and the booking ledger one process operates on.
type App struct {
	Catalog  *catalog.Store
	Accounts *account.Store
	Hub      *notify.Hub
	Ledger   *booking.Ledger
}

type options struct {
	logger        *slog.Logger
	out           io.Writer
	bookingPrefix string
	accountOpts   []account.Option
}

// Option configures an App.
type Option func(*options)

// WithLogger sets the structured logger shared by the app's components.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithOutput sets the sink notification deliveries default to. Nil writers
// are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithBookingPrefix overrides the booking id prefix.
func WithBookingPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.bookingPrefix = prefix
		}
	}
}

// WithAccountOptions forwards options to the account store, e.g. a lower
// bcrypt cost in tests.
func WithAccountOptions(opts ...account.Option) Option {
	return func(o *options) {
		o.accountOpts = append(o.accountOpts, opts...)
	}
}

// New assembles an empty application context.
func New(opts ...Option) *App {
	o := &options{
		logger:        slog.Default(),
		bookingPrefix: "BK",
	}
	for _, opt := range opts {
		opt(o)
	}

	cat := catalog.NewStore()
	hub := notify.NewHub()

	ledgerOpts := []booking.Option{
		booking.WithLogger(o.logger),
		booking.WithIDPrefix(o.bookingPrefix),
	}
	if o.out != nil {
		ledgerOpts = append(ledgerOpts, booking.WithOutput(o.out))
	}

	return &App{
		Catalog:  cat,
		Accounts: account.NewStore(o.accountOpts...),
		Hub:      hub,
		Ledger:   booking.NewLedger(cat, hub, ledgerOpts...),
	}
}
