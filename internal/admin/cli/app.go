package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/videoclub/internal/flagx"
	"github.com/dmitrijs2005/videoclub/internal/server/config"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/videoclub/internal/server/services"
)

const usage = `usage: rentalctl <command> [flags]

commands:
  migrate                                  apply pending schema migrations
  create-user -email E [-first F] [-last L] register a customer
  list-users                               print registered customers

database flags (-b driver, -d dsn, -c config, -env file) apply to every command`

var ErrUnknownCommand = errors.New("unknown command")

// openFunc opens and migrates the configured database.
type openFunc func(ctx context.Context, driver, dsn string) (*sql.DB, repomanager.RepositoryManager, error)

type App struct {
	config *config.Config
	reader *bufio.Reader
	out    io.Writer
	open   openFunc
}

func NewApp(c *config.Config, in io.Reader, out io.Writer) *App {
	return &App{config: c, reader: bufio.NewReader(in), out: out, open: repomanager.Open}
}

// Run dispatches args[0] to a command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch args[0] {
	case "migrate":
		return a.Migrate(ctx)
	case "create-user":
		return a.CreateUser(ctx, args[1:])
	case "list-users":
		return a.ListUsers(ctx)
	}

	fmt.Fprintln(a.out, usage)
	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

// withDB opens the database (which migrates it) and closes it after fn.
func (a *App) withDB(ctx context.Context, fn func(db *sql.DB, m repomanager.RepositoryManager) error) error {
	db, m, err := a.open(ctx, a.config.DatabaseDriver, a.config.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db, m)
}

func (a *App) Migrate(ctx context.Context) error {
	return a.withDB(ctx, func(*sql.DB, repomanager.RepositoryManager) error {
		fmt.Fprintf(a.out, "Database is up to date (%s)\n", a.config.DatabaseDriver)
		return nil
	})
}

// CreateUser registers a customer. The email is prompted for when -email is
// not given; the password is always read from the terminal.
func (a *App) CreateUser(ctx context.Context, args []string) error {
	var email, first, last string

	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&email, "email", "", "customer email")
	fs.StringVar(&first, "first", "", "first name")
	fs.StringVar(&last, "last", "", "last name")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-first", "-last"})); err != nil {
		return err
	}

	if email == "" {
		var err error
		email, err = GetSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.withDB(ctx, func(db *sql.DB, m repomanager.RepositoryManager) error {
		u, err := services.NewUserService(db, m, a.config).Register(ctx, email, string(password), first, last)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "User %s created (id %d)\n", u.Email, u.ID)
		return nil
	})
}

func (a *App) ListUsers(ctx context.Context) error {
	return a.withDB(ctx, func(db *sql.DB, m repomanager.RepositoryManager) error {
		users, err := services.NewUserService(db, m, a.config).ListUsers(ctx)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tEMAIL\tFIRST NAME\tLAST NAME")
		for _, u := range users {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Email, u.FirstName, u.LastName)
		}
		return tw.Flush()
	})
}
