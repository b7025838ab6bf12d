package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Role selects the audience prefix applied to delivered messages.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// prefix is the display tag rendered in front of delivered messages.
func (r Role) prefix() string {
	if r == RoleAdmin {
		return "NOTIFIKASI ADMIN"
	}
	return "NOTIFIKASI CUSTOMER"
}

// Subscriber receives hub messages on behalf of one named user.
type Subscriber struct {
	id   string
	role Role
	name string
	out  io.Writer
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// WithOutput redirects delivered messages to w. Nil writers are ignored.
func WithOutput(w io.Writer) SubscriberOption {
	return func(s *Subscriber) {
		if w != nil {
			s.out = w
		}
	}
}

// NewSubscriber creates a subscriber for the given audience role and display
// name. Messages go to os.Stdout unless WithOutput overrides the sink.
func NewSubscriber(role Role, name string, opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		id:   uuid.NewString(),
		role: role,
		name: name,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique subscriber identity.
func (s *Subscriber) ID() string { return s.id }

// Name returns the display name messages are addressed to.
func (s *Subscriber) Name() string { return s.name }

// Role returns the audience role.
func (s *Subscriber) Role() Role { return s.role }

// Notify renders one message to the subscriber's sink. Delivery has no
// failure mode; write errors are dropped.
func (s *Subscriber) Notify(message string) {
	fmt.Fprintf(s.out, "\n[%s - %s] %s\n", s.role.prefix(), s.name, message)
}
