package cli

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rentvehicle/rentkit"
	"github.com/rentvehicle/rentkit/pkg/account"
	"github.com/rentvehicle/rentkit/pkg/logger"
	"github.com/rentvehicle/rentkit/pkg/money"
	"github.com/rentvehicle/rentkit/pkg/notify"
)

// Runner drives the interactive menu loop.
type Runner struct {
	app    *rentkit.App
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	money  *money.Formatter

	// session state
	current *account.User
	sub     *notify.Subscriber
}

type runnerConfig struct {
	input  io.Reader
	output io.Writer
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*runnerConfig)

// WithInput sets the stream menu input is read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *runnerConfig) {
		if r != nil {
			c.input = r
		}
	}
}

// WithOutput sets the stream menus are rendered to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *runnerConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLogger sets the structured logger for session diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *runnerConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// New creates a Runner over the given application context.
func New(app *rentkit.App, opts ...Option) *Runner {
	cfg := &runnerConfig{
		input:  os.Stdin,
		output: os.Stdout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Runner{
		app:    app,
		in:     bufio.NewScanner(cfg.input),
		out:    cfg.output,
		logger: cfg.logger,
		money:  money.NewFormatter(),
	}
}

// Run executes the menu loop until the user exits or input ends. The error
// is always nil today; the signature leaves room for input stream failures.
func (r *Runner) Run() error {
	r.banner()

	for {
		var quit bool
		switch {
		case r.current == nil:
			quit = r.loginMenu()
		case r.current.Role.IsAdmin():
			quit = r.adminMenu()
		default:
			quit = r.customerMenu()
		}
		if quit {
			return nil
		}
	}
}

func (r *Runner) banner() {
	rule := strings.Repeat("=", 55)
	r.printf("%s\n", rule)
	r.printf("   SELAMAT DATANG DI RENTVEHICLE PRO SYSTEM\n")
	r.printf("%s\n", rule)
}

// loginMenu is the screen shown while nobody is signed in. It reports true
// when the session should end.
func (r *Runner) loginMenu() bool {
	r.printf("\n=== LOGIN ===\n")
	r.printf("1. Login\n")
	r.printf("2. Register\n")
	r.printf("3. Exit\n")

	choice, ok := r.readInt("Pilih menu: ")
	if !ok {
		return true
	}

	switch choice {
	case 1:
		r.login()
	case 2:
		r.register()
	case 3:
		r.printf("\nTerima kasih telah menggunakan RentVehicle Pro!\n")
		return true
	default:
		r.printf("Pilihan tidak valid!\n")
	}
	return false
}

func (r *Runner) login() {
	username, ok := r.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := r.readLine("Password: ")
	if !ok {
		return
	}

	user, err := r.app.Accounts.Authenticate(username, password)
	if err != nil {
		r.logger.Warn("login rejected", logger.Username(username))
		r.printf("\nUsername atau password salah!\n")
		return
	}

	r.current = &user

	role := notify.RoleCustomer
	if user.Role.IsAdmin() {
		role = notify.RoleAdmin
	}
	r.sub = notify.NewSubscriber(role, user.Name, notify.WithOutput(r.out))
	r.app.Hub.Attach(r.sub)

	r.logger.Info("user logged in",
		logger.Username(user.Username),
		slog.String("role", string(user.Role)),
	)
	r.printf("\nLogin berhasil! Selamat datang, %s\n", user.Name)
}

func (r *Runner) register() {
	username, ok := r.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := r.readLine("Password: ")
	if !ok {
		return
	}
	name, ok := r.readLine("Nama Lengkap: ")
	if !ok {
		return
	}

	if _, err := r.app.Accounts.Register(username, password, name, account.RoleCustomer); err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			r.printf("\nUsername sudah digunakan!\n")
			return
		}
		r.printf("\nRegistrasi gagal: %v\n", err)
		return
	}

	r.logger.Info("user registered", logger.Username(username))
	r.printf("\nRegistrasi berhasil! Silakan login.\n")
}

func (r *Runner) logout() {
	if r.sub != nil {
		r.app.Hub.Detach(r.sub)
		r.sub = nil
	}
	r.logger.Info("user logged out", logger.Username(r.current.Username))
	r.current = nil
	r.printf("\nLogout berhasil!\n")
}
