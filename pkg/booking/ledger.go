package booking

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/rentvehicle/rentkit/pkg/account"
	"github.com/rentvehicle/rentkit/pkg/logger"
	"github.com/rentvehicle/rentkit/pkg/money"
	"github.com/rentvehicle/rentkit/pkg/notify"
	"github.com/rentvehicle/rentkit/pkg/quote"
)

// Fleet is the vehicle availability surface the ledger drives: vehicles are
// taken when a booking is created and given back when it is rejected.
type Fleet interface {
	SetAvailable(id string, available bool) error
}

// Notifier is the broadcast surface booking events are published to.
type Notifier interface {
	Attach(*notify.Subscriber)
	Detach(*notify.Subscriber)
	Publish(message string)
}

// Ledger owns every booking and drives the status lifecycle.
//
// All booking-affecting operations share one mutex, so an id can only be
// confirmed or rejected once even with concurrent admin callers.
type Ledger struct {
	mu       sync.Mutex
	bookings []*Booking
	seq      int

	fleet    Fleet
	notifier Notifier
	out      io.Writer
	logger   *slog.Logger
	now      func() time.Time
	idPrefix string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the structured logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(l *Ledger) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithClock overrides the time source for booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithIDPrefix overrides the "BK" booking id prefix.
func WithIDPrefix(prefix string) Option {
	return func(l *Ledger) {
		if prefix != "" {
			l.idPrefix = prefix
		}
	}
}

// WithOutput sets the sink one-shot customer notifications are written to.
// Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(l *Ledger) {
		if w != nil {
			l.out = w
		}
	}
}

// NewLedger creates an empty ledger over the given fleet and notifier.
func NewLedger(fleet Fleet, notifier Notifier, opts ...Option) *Ledger {
	l := &Ledger{
		fleet:    fleet,
		notifier: notifier,
		out:      os.Stdout,
		logger:   slog.Default(),
		now:      time.Now,
		idPrefix: "BK",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Create commits q as a new pending booking for customer. The quoted
// vehicle is marked unavailable and every attached subscriber is told about
// the new booking.
//
// Cost and description are captured from the quote here; nothing recomputes
// them later.
func (l *Ledger) Create(customer account.User, q quote.Quote) (Booking, error) {
	root, ok := quote.Unwrap(q)
	if !ok {
		return Booking{}, ErrMalformedQuote
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	vehicleID := root.Vehicle().ID
	if err := l.fleet.SetAvailable(vehicleID, false); err != nil {
		return Booking{}, fmt.Errorf("mark vehicle %s unavailable: %w", vehicleID, err)
	}

	l.seq++
	b := &Booking{
		ID:          fmt.Sprintf("%s%03d", l.idPrefix, l.seq),
		Customer:    customer,
		Quote:       q,
		Cost:        q.Cost(),
		Description: q.Description(),
		Status:      StatusPending,
		CreatedAt:   l.now(),
	}
	l.bookings = append(l.bookings, b)

	l.logger.Info("booking created",
		slog.String("booking_id", b.ID),
		slog.String("customer", customer.Username),
		slog.String("vehicle_id", vehicleID),
		slog.Int64("cost", int64(b.Cost)),
	)
	l.notifier.Publish(fmt.Sprintf("Booking baru! %s - %s - %s", b.ID, customer.Name, b.Description))

	return *b, nil
}

// Confirm moves a pending booking to confirmed and notifies its customer.
// The vehicle stays unavailable. Unknown ids and already decided bookings
// both return ErrNotFound.
func (l *Ledger) Confirm(id string) (Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.advance(id, StatusConfirmed)
	if b == nil {
		return Booking{}, ErrNotFound
	}

	l.logger.Info("booking confirmed", slog.String("booking_id", b.ID))
	l.notifyCustomer(b, fmt.Sprintf("Booking %s telah dikonfirmasi! Silakan ambil kendaraan.", b.ID))

	return *b, nil
}

// Reject moves a pending booking to rejected, puts the vehicle back into
// the available pool, and notifies the customer. Unknown ids and already
// decided bookings both return ErrNotFound.
func (l *Ledger) Reject(id string) (Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.advance(id, StatusRejected)
	if b == nil {
		return Booking{}, ErrNotFound
	}

	if root, ok := quote.Unwrap(b.Quote); ok {
		vehicleID := root.Vehicle().ID
		if err := l.fleet.SetAvailable(vehicleID, true); err != nil {
			l.logger.Warn("vehicle not restored after reject",
				slog.String("booking_id", b.ID),
				slog.String("vehicle_id", vehicleID),
				logger.Error(err),
			)
		}
	}

	l.logger.Info("booking rejected", slog.String("booking_id", b.ID))
	l.notifyCustomer(b, fmt.Sprintf("Booking %s ditolak. Silakan hubungi admin untuk info lebih lanjut.", b.ID))

	return *b, nil
}

// advance finds the booking that may still move to target and applies the
// transition. Bookings are scanned in creation order; nil means no booking
// qualified. Callers must hold l.mu.
func (l *Ledger) advance(id string, target Status) *Booking {
	for _, b := range l.bookings {
		if b.ID == id && b.Status.CanTransition(target) {
			b.Status = target
			return b
		}
	}
	return nil
}

// notifyCustomer publishes message with the booking's customer attached
// through a one-shot subscriber, so the outcome reaches them alongside
// whoever is already listening. Callers must hold l.mu.
func (l *Ledger) notifyCustomer(b *Booking, message string) {
	sub := notify.NewSubscriber(notify.RoleCustomer, b.Customer.Name, notify.WithOutput(l.out))
	l.notifier.Attach(sub)
	l.notifier.Publish(message)
	l.notifier.Detach(sub)
}

// Revenue sums the cost of all confirmed bookings and reports how many
// there are. Pending and rejected bookings never count.
func (l *Ledger) Revenue() (money.Amount, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total money.Amount
	count := 0
	for _, b := range l.bookings {
		if b.Status == StatusConfirmed {
			total += b.Cost
			count++
		}
	}
	return total, count
}

// List returns copies of all bookings in creation order.
func (l *Ledger) List() []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, *b)
	}
	return out
}

// ListByCustomer returns copies of the bookings created by the given
// username, in creation order.
func (l *Ledger) ListByCustomer(username string) []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Booking
	for _, b := range l.bookings {
		if b.Customer.Username == username {
			out = append(out, *b)
		}
	}
	return out
}
