package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/client/client"
	"github.com/dmitrijs2005/fitkeeper/internal/client/config"
	"github.com/dmitrijs2005/fitkeeper/internal/client/securestore"
	"github.com/dmitrijs2005/fitkeeper/internal/client/services"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
	"github.com/dmitrijs2005/fitkeeper/internal/validation"
)

type authService interface {
	Register(ctx context.Context, form services.RegisterForm) (validation.FormResult, error)
	Login(ctx context.Context, form services.LoginForm) (validation.FormResult, error)
	Logout(ctx context.Context) bool
	Restore(ctx context.Context) bool
	Ping(ctx context.Context) error
}

type profileService interface {
	Profile(ctx context.Context) (*pb.GetProfileResponse, error)
	UploadPhoto(ctx context.Context, data []byte) (string, error)
}

type App struct {
	auth     authService
	profile  profileService
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	timeout  time.Duration
	loggedIn bool
	userName string
	readFile func(string) ([]byte, error)
	closers  []func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(c.LogLevel))

	store, err := securestore.Open(ctx, c.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("local storage: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := newApp(
		services.NewAuthService(apiClient, store, logger),
		services.NewProfileService(apiClient),
		logger, os.Stdin, os.Stdout, c.RequestTimeout,
	)
	a.closers = []func() error{apiClient.Close, store.Close}
	return a, nil
}

func newApp(as authService, ps profileService, logger logging.Logger, in io.Reader, out io.Writer, timeout time.Duration) *App {
	return &App{
		auth:     as,
		profile:  ps,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
		timeout:  timeout,
		readFile: os.ReadFile,
	}
}

// Run restores a saved session and blocks in the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.loggedIn = a.auth.Restore(ctx)

	fmt.Fprintln(a.out, "Welcome to fitkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	switch {
	case a.loggedIn && a.userName != "":
		return a.userName
	case a.loggedIn:
		return "logged in"
	default:
		return "guest"
	}
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

// describe turns a client error into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "Server is unavailable, try again later"
	case errors.Is(err, client.ErrConflict),
		errors.Is(err, client.ErrNotFound),
		errors.Is(err, client.ErrValidation),
		errors.Is(err, client.ErrUnauthorized):
		return err.Error()
	default:
		return "Something went wrong"
	}
}
