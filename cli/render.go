package cli

import (
	"strings"

	"github.com/rentvehicle/rentkit/pkg/booking"
	"github.com/rentvehicle/rentkit/pkg/catalog"
)

// timeLayout renders booking timestamps as day-month-year.
const timeLayout = "02-01-2006 15:04"

var (
	vehicleHeader = "ID       | Nama                 | Tipe       | Harga/Jam    | Status"
	vehicleRule   = strings.Repeat("-", 73)

	bookingHeader = "ID       | Customer        | Deskripsi                                | Total           | Status     | Waktu"
	bookingRule   = strings.Repeat("-", 125)
)

func (r *Runner) renderVehicles(vehicles []catalog.Vehicle) {
	r.printf("%s\n%s\n", vehicleHeader, vehicleRule)
	for _, v := range vehicles {
		status := "Tersedia"
		if !v.Available {
			status = "Disewa"
		}
		r.printf("%-8s | %-20s | %-10s | %s/jam | %s\n",
			v.ID, v.Name, v.Category, r.money.Format(v.BaseRate), status)
	}
}

func (r *Runner) renderBookings(bookings []booking.Booking) {
	r.printf("%s\n%s\n", bookingHeader, bookingRule)
	for _, b := range bookings {
		r.printf("%-8s | %-15s | %-40s | %-15s | %-10s | %s\n",
			b.ID, b.Customer.Name, b.Description, r.money.Format(b.Cost),
			b.Status, b.CreatedAt.Format(timeLayout))
	}
}
