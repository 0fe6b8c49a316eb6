// Package cli implements the interactive shelfkeeper shell: a
// line-oriented REPL that drives the credential store and the catalog
// and renders the resulting view. It is the only layer that talks to the
// terminal.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"shelfkeeper/internal/auth"
	"shelfkeeper/internal/catalog"
	"shelfkeeper/internal/config"
	"shelfkeeper/internal/logging"
	"shelfkeeper/internal/models"
	"shelfkeeper/internal/storage"
)

// App wires the application objects together and holds per-process UI
// state. It is driven from a single goroutine.
type App struct {
	config  *config.Config
	log     logging.Logger
	store   *storage.SQLiteStore
	slots   *storage.Slots
	auth    *auth.Service
	catalog *catalog.Catalog

	session *models.Session
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the database and constructs the application objects.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NopLogger{}
	}

	store, err := storage.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	slots := storage.NewSlots(store, log)
	authSvc := auth.NewService(slots, log)

	cat, err := catalog.New(ctx, slots, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	app := &App{
		config:  cfg,
		log:     log,
		store:   store,
		slots:   slots,
		auth:    authSvc,
		catalog: cat,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// resume a persisted session, if any
	if session, err := authSvc.CurrentUser(ctx); err == nil {
		app.session = session
	}

	return app, nil
}

// Run enters the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
