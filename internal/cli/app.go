// Package cli is the command surface of the admin client. Commands read the
// stores and dispatch store actions; they never touch a collection directly.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/config"
	"drukwater-admin/internal/store"
	"drukwater-admin/internal/token"
)

// App wires the shared dependencies every command needs. One instance per
// process; tests build their own against a fake backend.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Tokens *token.Holder

	Session    *store.Session
	Dzongkhags *store.DzongkhagStore
	Gewogs     *store.GewogStore
	Users      *store.UserStore
	Consumers  *store.ConsumerStore

	Out io.Writer
}

func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	tokens := token.NewHolder(token.NewFileStore(cfg.TokenDir))
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, tokens, logger)
	notifier := consoleNotifier{out: os.Stdout, errOut: os.Stderr}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Tokens:     tokens,
		Session:    store.NewSession(client, tokens, notifier, logger),
		Dzongkhags: store.NewDzongkhagStore(client, notifier, logger),
		Gewogs:     store.NewGewogStore(client, notifier, logger),
		Users:      store.NewUserStore(client, notifier, logger),
		Consumers:  store.NewConsumerStore(client, notifier, logger),
		Out:        os.Stdout,
	}
}

// RequireAuth gates a command behind session presence: a held token plus a
// fresh profile fetch. The profile is never restored from disk.
func (a *App) RequireAuth(ctx context.Context) error {
	if a.Tokens.Token() == "" {
		return errors.New("not logged in; run `drukwater-admin login` first")
	}
	if err := a.Session.FetchCurrentUser(ctx); err != nil {
		return err
	}
	if !a.Session.Authenticated() {
		return errors.New("session expired; run `drukwater-admin login` again")
	}
	return nil
}

// RequireSuperAdmin additionally gates user management.
func (a *App) RequireSuperAdmin(ctx context.Context) error {
	if err := a.RequireAuth(ctx); err != nil {
		return err
	}
	if !a.Session.IsSuperAdmin() {
		return errors.New("only the Super Admin can manage user accounts")
	}
	return nil
}

// consoleNotifier prints transient notifications; successes to stdout,
// errors to stderr.
type consoleNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n consoleNotifier) Success(msg string) { fmt.Fprintln(n.out, msg) }
func (n consoleNotifier) Error(msg string)   { fmt.Fprintln(n.errOut, "error: "+msg) }
