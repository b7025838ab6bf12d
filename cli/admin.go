package cli

import (
	"errors"
	"log/slog"

	"github.com/rentvehicle/rentkit/pkg/catalog"
)

// adminMenu is the screen shown to administrators. It reports true when the
// session should end.
func (r *Runner) adminMenu() bool {
	r.printf("\n=== MENU ADMIN ===\n")
	r.printf("1. Lihat Semua Kendaraan\n")
	r.printf("2. Tambah Kendaraan\n")
	r.printf("3. Lihat Semua Booking\n")
	r.printf("4. Konfirmasi Booking\n")
	r.printf("5. Reject Booking\n")
	r.printf("6. Laporan Pendapatan\n")
	r.printf("7. Logout\n")

	choice, ok := r.readInt("Pilih menu: ")
	if !ok {
		return true
	}

	switch choice {
	case 1:
		r.showAllVehicles()
	case 2:
		r.addVehicle()
	case 3:
		r.showAllBookings()
	case 4:
		r.confirmBooking()
	case 5:
		r.rejectBooking()
	case 6:
		r.revenueReport()
	case 7:
		r.logout()
	default:
		r.printf("Pilihan tidak valid!\n")
	}
	return false
}

func (r *Runner) showAllVehicles() {
	r.printf("\n=== SEMUA KENDARAAN ===\n")
	r.renderVehicles(r.app.Catalog.List())
}

func (r *Runner) addVehicle() {
	r.printf("\n=== TAMBAH KENDARAAN ===\n")

	id, ok := r.readLine("ID Kendaraan: ")
	if !ok {
		return
	}
	name, ok := r.readLine("Nama Kendaraan: ")
	if !ok {
		return
	}
	category, ok := r.readLine("Tipe: ")
	if !ok {
		return
	}
	rate, ok := r.readAmount("Harga per jam: ")
	if !ok {
		return
	}
	if rate < 0 {
		r.printf("Input tidak valid!\n")
		return
	}

	err := r.app.Catalog.Add(catalog.Vehicle{
		ID:        id,
		Name:      name,
		Category:  category,
		BaseRate:  rate,
		Available: true,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateVehicle) {
			r.printf("\nID kendaraan sudah digunakan!\n")
			return
		}
		r.printf("\nKendaraan tidak valid: %v\n", err)
		return
	}

	r.logger.Info("vehicle added", slog.String("vehicle_id", id))
	r.printf("\nKendaraan berhasil ditambahkan!\n")
}

func (r *Runner) showAllBookings() {
	r.printf("\n=== SEMUA BOOKING ===\n")
	r.renderBookings(r.app.Ledger.List())
}

func (r *Runner) confirmBooking() {
	r.showAllBookings()

	id, ok := r.readLine("\nMasukkan ID booking yang akan dikonfirmasi: ")
	if !ok {
		return
	}

	if _, err := r.app.Ledger.Confirm(id); err != nil {
		r.printf("Booking tidak ditemukan atau sudah diproses!\n")
		return
	}
	r.printf("\nBooking berhasil dikonfirmasi!\n")
}

func (r *Runner) rejectBooking() {
	r.showAllBookings()

	id, ok := r.readLine("\nMasukkan ID booking yang akan direject: ")
	if !ok {
		return
	}

	if _, err := r.app.Ledger.Reject(id); err != nil {
		r.printf("Booking tidak ditemukan atau sudah diproses!\n")
		return
	}
	r.printf("\nBooking berhasil direject!\n")
}

func (r *Runner) revenueReport() {
	total, count := r.app.Ledger.Revenue()

	r.printf("\n=== LAPORAN PENDAPATAN ===\n")
	r.printf("Total Booking Terkonfirmasi: %d\n", count)
	r.printf("Total Pendapatan: %s\n", r.money.Format(total))
}
