package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rentvehicle/rentkit/pkg/logger"
	"github.com/rentvehicle/rentkit/pkg/pricing"
	"github.com/rentvehicle/rentkit/pkg/quote"
)

// customerMenu is the screen shown to customers. It reports true when the
// session should end.
func (r *Runner) customerMenu() bool {
	r.printf("\n=== MENU CUSTOMER ===\n")
	r.printf("1. Lihat Kendaraan Tersedia\n")
	r.printf("2. Buat Booking\n")
	r.printf("3. Lihat History Booking Saya\n")
	r.printf("4. Logout\n")

	choice, ok := r.readInt("Pilih menu: ")
	if !ok {
		return true
	}

	switch choice {
	case 1:
		r.showAvailableVehicles()
	case 2:
		r.createBooking()
	case 3:
		r.myBookings()
	case 4:
		r.logout()
	default:
		r.printf("Pilihan tidak valid!\n")
	}
	return false
}

func (r *Runner) showAvailableVehicles() {
	r.printf("\n=== KENDARAAN TERSEDIA ===\n")
	r.renderVehicles(r.app.Catalog.ListAvailable())
}

// createBooking walks the customer from vehicle choice to a committed
// booking: pick a vehicle, pick a pricing policy and duration, layer
// add-ons, then confirm the summarized quote.
func (r *Runner) createBooking() {
	r.printf("\n=== BUAT BOOKING ===\n")
	r.showAvailableVehicles()

	id, ok := r.readLine("\nMasukkan ID kendaraan: ")
	if !ok {
		return
	}
	vehicle, err := r.app.Catalog.FindAvailable(id)
	if err != nil {
		r.printf("Kendaraan tidak tersedia!\n")
		return
	}

	policies := pricing.Policies()
	r.printf("\n=== PILIH PAKET HARGA ===\n")
	for i, p := range policies {
		r.printf("%d. %s\n", i+1, p.Label())
	}
	choice, ok := r.readInt("Pilih: ")
	if !ok {
		return
	}
	if choice < 1 || choice > len(policies) {
		r.printf("Pilihan tidak valid!\n")
		return
	}
	policy := policies[choice-1]

	duration, ok := r.readInt(fmt.Sprintf("Durasi (%s): ", policy.Unit()))
	if !ok {
		return
	}

	var q quote.Quote
	q, err = quote.NewBase(vehicle, policy, duration)
	if err != nil {
		r.printf("Durasi tidak valid!\n")
		return
	}

	q, ok = r.selectAddOns(q)
	if !ok {
		return
	}

	r.printf("\n=== RINGKASAN BOOKING ===\n")
	r.printf("Deskripsi: %s\n", q.Description())
	r.printf("Total Biaya: %s\n", r.money.Format(q.Cost()))

	answer, ok := r.readLine("\nKonfirmasi booking (y/n)? ")
	if !ok {
		return
	}
	if !strings.EqualFold(answer, "y") {
		return
	}

	b, err := r.app.Ledger.Create(*r.current, q)
	if err != nil {
		r.logger.Error("booking not created",
			logger.Username(r.current.Username),
			logger.Error(err),
		)
		r.printf("Booking gagal, silakan coba lagi!\n")
		return
	}

	r.printf("\nBooking berhasil dibuat dengan ID: %s\n", b.ID)
	r.printf("Menunggu konfirmasi admin...\n")
}

// selectAddOns offers the add-on menu and wraps q once per picked kind.
// Unknown tokens in the comma-separated answer are skipped, matching how
// forgiving the rest of the menu input is.
func (r *Runner) selectAddOns(q quote.Quote) (quote.Quote, bool) {
	kinds := quote.AddOnKinds()

	r.printf("\n=== TAMBAH LAYANAN ===\n")
	r.printf("Pilih layanan tambahan (pisahkan dengan koma, contoh: 1,2,3)\n")
	for i, k := range kinds {
		r.printf("%d. %s (+%s)\n", i+1, k.Name(), r.money.Format(k.Surcharge()))
	}
	r.printf("0. Tidak ada\n")

	line, ok := r.readLine("Pilih: ")
	if !ok {
		return nil, false
	}
	if line == "" || line == "0" {
		return q, true
	}

	for _, token := range strings.Split(line, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || idx < 1 || idx > len(kinds) {
			continue
		}
		wrapped, err := quote.Wrap(q, kinds[idx-1])
		if err != nil {
			continue
		}
		q = wrapped
	}
	return q, true
}

func (r *Runner) myBookings() {
	r.printf("\n=== HISTORY BOOKING SAYA ===\n")
	r.renderBookings(r.app.Ledger.ListByCustomer(r.current.Username))
}
