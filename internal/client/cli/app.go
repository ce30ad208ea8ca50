package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pnqminh/photoshare/internal/client/client"
	"github.com/pnqminh/photoshare/internal/client/config"
	"github.com/pnqminh/photoshare/internal/client/coordinator"
	"github.com/pnqminh/photoshare/internal/client/repositories/metadata"
	"github.com/pnqminh/photoshare/internal/client/services"
	"github.com/pnqminh/photoshare/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	api        client.Client
	session    *services.SessionStore
	account    *services.AccountService
	directory  *services.DirectoryService
	detail     *services.DetailService
	collection *services.CollectionService
	aggregate  *services.AggregateService
	coord      *coordinator.Coordinator
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	log := logging.NewText(os.Stderr, slog.LevelWarn)

	var repo metadata.Repository
	db, err := client.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		log.Warn(ctx, "local database unavailable, session will not survive restarts", "error", err)
		repo = metadata.NewMemoryRepository()
	} else {
		repo = metadata.NewSQLiteRepository(db)
	}

	apiClient, err := client.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	session := services.NewSessionStore(repo)

	directory := services.NewDirectoryService(apiClient, log)
	detail := services.NewDetailService(apiClient, log)
	coord := coordinator.New(directory, detail, log)

	account := services.NewAccountService(apiClient, session, coord.Notify, log)
	collection := services.NewCollectionService(apiClient, session, coord.Notify, log)
	aggregate := services.NewAggregateService(apiClient, log)

	return &App{
		config:     c,
		api:        apiClient,
		session:    session,
		account:    account,
		directory:  directory,
		detail:     detail,
		collection: collection,
		aggregate:  aggregate,
		coord:      coord,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// status renders the prompt suffix, e.g. "(minh)" when logged in.
func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.FirstName)
	}
	return ""
}

// Run restores a previously persisted session, then hands control to the
// REPL. It blocks until the user exits and drains in-flight refreshes
// before returning.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	if u, err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	} else if u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.FullName())
	}

	fmt.Fprintln(a.out, "PhotoShare CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))

	a.coord.Wait()
}
