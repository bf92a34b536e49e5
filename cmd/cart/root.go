package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	cartapp "github.com/dwikikusuma/guitar-cart/internal/cart/app"
	"github.com/dwikikusuma/guitar-cart/internal/cart/infra/storage"
	catalogapp "github.com/dwikikusuma/guitar-cart/internal/catalog/app"
	"github.com/dwikikusuma/guitar-cart/internal/catalog/infra/static"
	"github.com/dwikikusuma/guitar-cart/pkg/config"
	"github.com/dwikikusuma/guitar-cart/pkg/kv"
	"github.com/dwikikusuma/guitar-cart/pkg/logger"
	"github.com/dwikikusuma/guitar-cart/pkg/money"
	"github.com/dwikikusuma/guitar-cart/pkg/sqlite"
)

// cli carries what every subcommand needs once the root pre-run has wired it.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	flags struct {
		store    string
		key      string
		catalog  string
		logLevel string
		currency string
	}

	cfg     config.Config
	log     *slog.Logger
	db      *sql.DB
	cart    *cartapp.Service
	catalog *catalogapp.Service
	money   *money.Formatter
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{stdout: stdout, stderr: stderr}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cart",
		Short:        "Keep a guitar shopping cart in local storage",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.store, "store", "", "SQLite file backing local storage (env CART_STORE_PATH)")
	pf.StringVar(&c.flags.key, "key", "", "storage key holding the cart (env CART_STORAGE_KEY)")
	pf.StringVar(&c.flags.catalog, "catalog", "", "YAML catalog file, embedded catalog if empty (env CATALOG_PATH)")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.StringVar(&c.flags.currency, "currency", "", "ISO 4217 code used to print prices (env CART_CURRENCY)")

	root.AddCommand(
		c.catalogCmd(),
		c.showCmd(),
		c.addCmd(),
		c.removeCmd(),
		c.increaseCmd(),
		c.decreaseCmd(),
		c.clearCmd(),
		c.serveCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("store") {
		cfg.StorePath = c.flags.store
	}
	if pf.Changed("key") {
		cfg.StorageKey = c.flags.key
	}
	if pf.Changed("catalog") {
		cfg.CatalogPath = c.flags.catalog
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = c.flags.logLevel
	}
	if pf.Changed("currency") {
		cfg.Currency = c.flags.currency
	}
	c.cfg = cfg

	c.log = logger.New(logger.Options{
		Service: "cart",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Writer:  c.stderr,
	})

	c.money, err = money.NewFormatter(cfg.Currency, language.English)
	if err != nil {
		return err
	}

	src, err := static.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	c.catalog = catalogapp.NewService(src)

	c.db, err = sqlite.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	backend, err := kv.NewSQLite(cmd.Context(), c.db)
	if err != nil {
		return fmt.Errorf("local storage: %w", err)
	}

	store := storage.NewCartStore(backend, cfg.StorageKey, c.log)
	c.cart = cartapp.NewService(cmd.Context(), store, c.log)
	return nil
}

func (c *cli) close() {
	if c.db == nil {
		return
	}
	if err := c.db.Close(); err != nil && c.log != nil {
		c.log.Error("close storage", slog.Any("err", err))
	}
}
