package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentvehicle/rentkit/pkg/notify"
)

func TestSubscriber_Notify(t *testing.T) {
	t.Parallel()

	t.Run("admin prefix", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		sub := notify.NewSubscriber(notify.RoleAdmin, "Admin", notify.WithOutput(&buf))
		sub.Notify("Booking baru! BK001 - Budi Santoso - Toyota Avanza - Per Jam")

		assert.Equal(t,
			"\n[NOTIFIKASI ADMIN - Admin] Booking baru! BK001 - Budi Santoso - Toyota Avanza - Per Jam\n",
			buf.String())
	})

	t.Run("customer prefix", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		sub := notify.NewSubscriber(notify.RoleCustomer, "Budi Santoso", notify.WithOutput(&buf))
		sub.Notify("Booking BK001 telah dikonfirmasi! Silakan ambil kendaraan.")

		assert.Equal(t,
			"\n[NOTIFIKASI CUSTOMER - Budi Santoso] Booking BK001 telah dikonfirmasi! Silakan ambil kendaraan.\n",
			buf.String())
	})

	t.Run("distinct identities for equal names", func(t *testing.T) {
		t.Parallel()

		a := notify.NewSubscriber(notify.RoleCustomer, "Budi Santoso")
		b := notify.NewSubscriber(notify.RoleCustomer, "Budi Santoso")
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, a.Name(), b.Name())
		assert.Equal(t, notify.RoleCustomer, a.Role())
	})
}

func TestHub_Publish(t *testing.T) {
	t.Parallel()

	t.Run("delivers in attachment order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		hub := notify.NewHub()
		hub.Attach(notify.NewSubscriber(notify.RoleAdmin, "Admin", notify.WithOutput(&buf)))
		hub.Attach(notify.NewSubscriber(notify.RoleCustomer, "Budi Santoso", notify.WithOutput(&buf)))

		hub.Publish("Booking baru! BK001 - Budi Santoso - Honda Jazz - Per Hari")

		out := buf.String()
		adminAt := strings.Index(out, "[NOTIFIKASI ADMIN - Admin]")
		customerAt := strings.Index(out, "[NOTIFIKASI CUSTOMER - Budi Santoso]")
		require.GreaterOrEqual(t, adminAt, 0)
		require.GreaterOrEqual(t, customerAt, 0)
		assert.Less(t, adminAt, customerAt)
	})

	t.Run("nobody attached is a no-op", func(t *testing.T) {
		t.Parallel()

		hub := notify.NewHub()
		hub.Publish("into the void")
		assert.Equal(t, 0, hub.Len())
	})

	t.Run("delivers once per subscriber", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		hub := notify.NewHub()
		sub := notify.NewSubscriber(notify.RoleAdmin, "Admin", notify.WithOutput(&buf))
		hub.Attach(sub)
		hub.Attach(sub)

		hub.Publish("once")
		assert.Equal(t, 1, strings.Count(buf.String(), "once"))
	})
}

func TestHub_AttachDetach(t *testing.T) {
	t.Parallel()

	t.Run("attach twice keeps one entry", func(t *testing.T) {
		t.Parallel()

		hub := notify.NewHub()
		sub := notify.NewSubscriber(notify.RoleCustomer, "Budi Santoso")
		hub.Attach(sub)
		hub.Attach(sub)
		assert.Equal(t, 1, hub.Len())
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		hub := notify.NewHub()
		stay := notify.NewSubscriber(notify.RoleAdmin, "Admin", notify.WithOutput(&buf))
		leave := notify.NewSubscriber(notify.RoleCustomer, "Budi Santoso", notify.WithOutput(&buf))
		hub.Attach(stay)
		hub.Attach(leave)

		hub.Detach(leave)
		hub.Detach(leave)
		assert.Equal(t, 1, hub.Len())

		hub.Publish("after detach")
		assert.NotContains(t, buf.String(), "CUSTOMER")
		assert.Contains(t, buf.String(), "ADMIN")
	})

	t.Run("detach unknown subscriber is a no-op", func(t *testing.T) {
		t.Parallel()

		hub := notify.NewHub()
		hub.Attach(notify.NewSubscriber(notify.RoleAdmin, "Admin"))
		hub.Detach(notify.NewSubscriber(notify.RoleCustomer, "Never Attached"))
		assert.Equal(t, 1, hub.Len())
	})

	t.Run("nil subscriber ignored", func(t *testing.T) {
		t.Parallel()

		hub := notify.NewHub()
		hub.Attach(nil)
		hub.Detach(nil)
		assert.Equal(t, 0, hub.Len())
	})
}
