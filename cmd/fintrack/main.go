package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fintrack/internal/aggregate"
	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/session"
)

const usage = `Usage: fintrack <command> [flags]

Commands:
  login      -user NAME -password PASS
  register   -user NAME -email ADDR -password PASS
  logout
  whoami

  expenses   [-category C] [-month M] [-year Y]
  expense    add|repay|unrepay [flags]
  sheet      [-month M] [-year Y] [-email ADDR]
  watch      [-schedule SPEC]

  emis       [-remote]
  emi        add|pay|unpay [flags]
  lending    [-status S] [-remote]
  lend       add|update|delete [flags]
  savings    [-type T] [-month YYYY-MM] [-remote]
  saving     add|delete [flags]
`

// app carries the wired collaborators every command needs.
type app struct {
	cfg    *config.Config
	store  *session.Store
	client *api.Client
	log    *logrus.Logger
	out    io.Writer
	now    time.Time
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		logger.Fatalf("Failed to open session store: %v", err)
	}

	a := &app{
		cfg:    cfg,
		store:  store,
		client: api.NewClient(cfg.BaseURL(), store, logger),
		log:    logger,
		out:    os.Stdout,
		now:    time.Now(),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		a.report(err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "expenses":
		return a.expensesView(ctx, args)
	case "expense":
		return a.expenseCommand(ctx, args)
	case "sheet":
		return a.sheetView(ctx, args)
	case "watch":
		return a.watchSheet(ctx, args)
	case "emis":
		return a.emisView(ctx, args)
	case "emi":
		return a.emiCommand(ctx, args)
	case "lending":
		return a.lendingView(ctx, args)
	case "lend":
		return a.lendCommand(ctx, args)
	case "savings":
		return a.savingsView(ctx, args)
	case "saving":
		return a.savingCommand(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// report maps the error taxonomy onto user-facing messages: expired
// sessions force a re-login, backend validation messages surface
// verbatim, everything else gets the generic line. Nothing is retried.
func (a *app) report(err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(os.Stderr, "Your session has expired. Please log in again with 'fintrack login'.")
	case api.IsValidation(err):
		fmt.Fprintln(os.Stderr, err.Error())
	default:
		a.log.Debugf("command failed: %v", err)
		fmt.Fprintf(os.Stderr, "Something went wrong: %v\nPlease try again.\n", err)
	}
}

// requireSession fails fast when no token is stored or the stored one
// has visibly expired, sparing a round trip that would 401 anyway.
func (a *app) requireSession() error {
	if _, ok := a.store.Token(); !ok {
		return fmt.Errorf("not logged in; run 'fintrack login' first")
	}
	if a.store.Expired(a.now) {
		if err := a.store.Clear(); err != nil {
			a.log.Warnf("Failed to clear expired session: %v", err)
		}
		return api.ErrUnauthorized
	}
	return nil
}

// parseMonth accepts "all", 1-12 and month names ("march", "Mar").
func parseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return aggregate.MonthAll, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range 1-12", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", s)
}

// parseCategory resolves user input onto the closed category set,
// tolerating near-miss spellings.
func parseCategory(s string) (models.Category, error) {
	if s == "" || strings.EqualFold(s, "all") {
		return aggregate.CategoryAll, nil
	}
	c, ok := models.MatchCategory(s)
	if !ok {
		return "", fmt.Errorf("unknown category %q (want one of %v)", s, models.Categories())
	}
	return c, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", d)
	}
	return d, nil
}

// decimalFlag parses an optional decimal flag, treating empty as zero.
func decimalFlag(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseDate accepts YYYY-MM-DD, defaulting empty input to today.
func (a *app) parseDate(s string) (models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return models.DateOf(a.now), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return models.DateOf(t), nil
}
