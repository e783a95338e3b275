package main

import (
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/eigerco/ore/internal/config"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/processor"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/internal/sysvar"
	"github.com/eigerco/ore/internal/token"
	"github.com/eigerco/ore/pkg/db/pebble"
	"github.com/eigerco/ore/pkg/log"
)

// ledger is an opened account store with the program registered.
type ledger struct {
	cfg      *config.Config
	kv       *pebble.KVStore
	accounts *store.Accounts
	executor *runtime.Executor
}

func openLedger(c *cli.Context) (*ledger, error) {
	cfg, err := config.Load(c.GlobalString("env-file"))
	if err != nil {
		return nil, err
	}
	log.Init(cfg.LogOptions())

	var opts []pebble.Option
	if !cfg.InMemory {
		opts = append(opts, pebble.WithPath(cfg.DBPath))
	}
	kv, err := pebble.NewKVStore(opts...)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	accounts := store.NewAccounts(kv)
	executor := runtime.NewExecutor(accounts)
	tok := token.Program{ID: constants.TokenProgramID, MaxSupply: constants.MaxSupply}
	executor.Register(constants.ProgramID, processor.New(sysvar.SystemClock{}, tok))

	log.Root.Debug().Str("path", cfg.DBPath).Bool("in_memory", cfg.InMemory).Msg("ledger opened")
	return &ledger{cfg: cfg, kv: kv, accounts: accounts, executor: executor}, nil
}

func (l *ledger) Close() {
	if err := l.kv.Close(); err != nil {
		log.Root.Error().Err(err).Msg("close ledger")
	}
}

// withLedger opens the ledger around a command action.
func withLedger(action func(*cli.Context, *ledger) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		l, err := openLedger(c)
		if err != nil {
			return err
		}
		defer l.Close()
		return action(c, l)
	}
}
