package cli_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentvehicle/rentkit"
	"github.com/rentvehicle/rentkit/cli"
	"github.com/rentvehicle/rentkit/pkg/account"
)

func newTestApp(t *testing.T, out *bytes.Buffer) *rentkit.App {
	t.Helper()

	app := rentkit.New(
		rentkit.WithOutput(out),
		rentkit.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		rentkit.WithAccountOptions(account.WithBcryptCost(bcrypt.MinCost)),
	)
	require.NoError(t, app.ApplySeed(rentkit.DefaultSeed()))
	return app
}

// runSession feeds the script lines to a fresh seeded app and returns
// everything the runner wrote.
func runSession(t *testing.T, script ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	app := newTestApp(t, out)
	runner := cli.New(app,
		cli.WithInput(strings.NewReader(strings.Join(script, "\n")+"\n")),
		cli.WithOutput(out),
		cli.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, runner.Run())
	return out.String()
}

func TestRunner_FullBookingSession(t *testing.T) {
	t.Parallel()

	out := runSession(t,
		"2", // register
		"sari", "sari123", "Sari Dewi",
		"1", // login
		"sari", "sari123",
		"1", // lihat kendaraan tersedia
		"2", // buat booking
		"V001",
		"3",   // weekly
		"2",   // two weeks
		"1,3", // insurance + gps
		"y",
		"3", // history
		"4", // logout
		"1", // login as admin
		"admin", "admin123",
		"4", // konfirmasi booking
		"BK001",
		"6", // laporan pendapatan
		"7", // logout
		"3", // exit
	)

	assert.Contains(t, out, "SELAMAT DATANG DI RENTVEHICLE PRO SYSTEM")
	assert.Contains(t, out, "Registrasi berhasil! Silakan login.")
	assert.Contains(t, out, "Login berhasil! Selamat datang, Sari Dewi")
	assert.Contains(t, out, "Toyota Avanza")

	// Quote summary with both add-ons applied.
	assert.Contains(t, out, "Deskripsi: Toyota Avanza - Per Minggu (Diskon 15%) + Asuransi + GPS")
	assert.Contains(t, out, "Total Biaya: Rp 3.645.000")
	assert.Contains(t, out, "Booking berhasil dibuat dengan ID: BK001")
	assert.Contains(t, out, "Menunggu konfirmasi admin...")

	// The customer hears about their own new booking while attached.
	assert.Contains(t, out,
		"[NOTIFIKASI CUSTOMER - Sari Dewi] Booking baru! BK001 - Sari Dewi - Toyota Avanza - Per Minggu (Diskon 15%) + Asuransi + GPS")

	// History shows the pending booking.
	assert.Contains(t, out, "=== HISTORY BOOKING SAYA ===")
	assert.Contains(t, out, "PENDING")

	// Admin decision and its notifications.
	assert.Contains(t, out, "Login berhasil! Selamat datang, Admin")
	assert.Contains(t, out, "Booking berhasil dikonfirmasi!")
	assert.Contains(t, out,
		"[NOTIFIKASI ADMIN - Admin] Booking BK001 telah dikonfirmasi! Silakan ambil kendaraan.")
	assert.Contains(t, out,
		"[NOTIFIKASI CUSTOMER - Sari Dewi] Booking BK001 telah dikonfirmasi! Silakan ambil kendaraan.")

	assert.Contains(t, out, "Total Booking Terkonfirmasi: 1")
	assert.Contains(t, out, "Total Pendapatan: Rp 3.645.000")
	assert.Contains(t, out, "Terima kasih telah menggunakan RentVehicle Pro!")
}

func TestRunner_RejectionFreesVehicle(t *testing.T) {
	t.Parallel()

	out := runSession(t,
		"1", // login
		"customer1", "pass123",
		"2", // buat booking
		"V005",
		"1", // hourly
		"4",
		"0", // no add-ons
		"y",
		"4", // logout
		"1", // login admin
		"admin", "admin123",
		"5", // reject booking
		"BK001",
		"1", // lihat semua kendaraan
		"6", // laporan
		"7", // logout
		"3", // exit
	)

	assert.Contains(t, out, "Booking berhasil direject!")
	assert.Contains(t, out,
		"[NOTIFIKASI CUSTOMER - Budi Santoso] Booking BK001 ditolak. Silakan hubungi admin untuk info lebih lanjut.")
	assert.Contains(t, out, "Total Booking Terkonfirmasi: 0")
	assert.Contains(t, out, "Total Pendapatan: Rp 0")

	// The motorcycle went back to the available pool.
	lines := strings.Split(out, "\n")
	var cbrRows []string
	for _, line := range lines {
		if strings.HasPrefix(line, "V005") {
			cbrRows = append(cbrRows, line)
		}
	}
	require.NotEmpty(t, cbrRows)
	assert.Contains(t, cbrRows[len(cbrRows)-1], "Tersedia")
}

func TestRunner_InvalidInputs(t *testing.T) {
	t.Parallel()

	t.Run("wrong credentials", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"1",
			"admin", "wrong",
			"3",
		)
		assert.Contains(t, out, "Username atau password salah!")
	})

	t.Run("malformed menu choice degrades to invalid", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"abc",
			"9",
			"3",
		)
		assert.Equal(t, 2, strings.Count(out, "Pilihan tidak valid!"))
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"1",
			"customer1", "pass123",
			"2",
			"V999",
			"4",
			"3",
		)
		assert.Contains(t, out, "Kendaraan tidak tersedia!")
	})

	t.Run("zero duration", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"1",
			"customer1", "pass123",
			"2",
			"V001",
			"1",
			"0",
			"4",
			"3",
		)
		assert.Contains(t, out, "Durasi tidak valid!")
		assert.NotContains(t, out, "Booking berhasil dibuat")
	})

	t.Run("declining the summary books nothing", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"1",
			"customer1", "pass123",
			"2",
			"V001",
			"1",
			"2",
			"0",
			"n",
			"3", // history stays empty
			"4",
			"3",
		)
		assert.NotContains(t, out, "Booking berhasil dibuat")
		assert.NotContains(t, out, "BK001")
	})

	t.Run("deciding an unknown booking", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"1",
			"admin", "admin123",
			"4",
			"BK999",
			"7",
			"3",
		)
		assert.Contains(t, out, "Booking tidak ditemukan atau sudah diproses!")
	})

	t.Run("input ending mid-session exits cleanly", func(t *testing.T) {
		t.Parallel()

		out := runSession(t,
			"1",
			"customer1",
		)
		assert.Contains(t, out, "Password: ")
	})
}

func TestRunner_AdminAddsVehicle(t *testing.T) {
	t.Parallel()

	out := runSession(t,
		"1",
		"admin", "admin123",
		"2", // tambah kendaraan
		"V006", "Daihatsu Sigra", "MPV", "11000",
		"2", // duplicate id
		"V006", "Clone", "MPV", "9000",
		"2", // negative price
		"V007", "Negative", "MPV", "-10",
		"1", // list shows the new vehicle
		"7",
		"3",
	)

	assert.Contains(t, out, "Kendaraan berhasil ditambahkan!")
	assert.Contains(t, out, "ID kendaraan sudah digunakan!")
	assert.Contains(t, out, "Input tidak valid!")
	assert.Contains(t, out, "Daihatsu Sigra")
	assert.Contains(t, out, "Rp 11.000/jam")
	assert.NotContains(t, out, "Negative")
}

func TestRunner_CustomerCannotSeeRentedVehicle(t *testing.T) {
	t.Parallel()

	out := runSession(t,
		"1",
		"customer1", "pass123",
		"2", // book the Avanza
		"V001",
		"2", // daily
		"1",
		"0",
		"y",
		"1", // available list must not show V001 anymore
		"4",
		"3",
	)

	// V001 appears in the first listing (inside createBooking) but not in
	// the final one.
	last := strings.LastIndex(out, "=== KENDARAAN TERSEDIA ===")
	assert.NotContains(t, out[last:], "Toyota Avanza")
	assert.Contains(t, out[last:], "Honda Jazz")
}
