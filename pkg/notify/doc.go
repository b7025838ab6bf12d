// Package notify implements synchronous fan-out of booking events to
// attached subscribers.
//
// A Hub keeps subscribers in attachment order and delivers every published
// message to each of them, synchronously, before Publish returns. There is
// no queueing, retry, or persistence; a message published while nobody is
// attached is gone.
//
// Subscribers carry an audience role that selects the display prefix of
// delivered messages, and write to an io.Writer sink (os.Stdout unless
// overridden):
//
//	hub := notify.NewHub()
//	admin := notify.NewSubscriber(notify.RoleAdmin, "Admin")
//	hub.Attach(admin)
//	hub.Publish("Booking baru! BK001 - Budi Santoso - Toyota Avanza - Per Jam")
//
// Attach and Detach are idempotent. Subscribers are identified by a unique
// id assigned at construction, so two subscribers sharing a display name
// stay distinct.
package notify
