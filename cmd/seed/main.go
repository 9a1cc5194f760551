// Command seed loads a YAML question bank into the configured store. It
// goes through the same services as the API, so seeded data is validated
// and linked exactly like data created over HTTP.
//
// Flags:
//
//	--file           path to the question bank (overrides SEED_FILE)
//	--dry-run        validate the bank without writing
//	--seed-config    path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error, 2 = bad flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/priteshGolakiya/Interview-Questions/internal/app"
	"github.com/priteshGolakiya/Interview-Questions/internal/app/seeder"
	"github.com/priteshGolakiya/Interview-Questions/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run seeds the store and returns the process exit code. Keeping the work
// here lets the deferred store close and context cancel run before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fileFlag := fs.String("file", "", "path to the question bank YAML file")
	dryRunFlag := fs.Bool("dry-run", false, "validate the bank without writing")
	seedConfigFlag := fs.String("seed-config", "", "path to seeder YAML config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	appCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg, err := seeder.LoadConfig(*seedConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		return 1
	}
	if *fileFlag != "" {
		seedCfg.File = *fileFlag
	}
	if *dryRunFlag {
		seedCfg.DryRun = true
	}
	if seedCfg.File == "" {
		logger.Error("no question bank given: use --file or SEED_FILE")
		return 1
	}

	bank, err := seeder.ReadBankFile(seedCfg.File)
	if err != nil {
		logger.Error("read question bank", slog.String("error", err.Error()))
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := store.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	}()

	if appCfg.Store.Driver == config.DriverMemory {
		logger.Warn("seeding the memory store: data is discarded on exit")
	}

	svcs := app.NewServices(logger, store)
	pipeline := seeder.NewPipeline(logger, svcs.Categories, svcs.Questions, *seedCfg)

	start := time.Now()
	runErr := pipeline.Run(ctx, bank)

	var inserted, skipped, failed int
	for _, r := range pipeline.Results() {
		inserted += r.Inserted
		skipped += r.Skipped
		failed += r.Errors
	}
	logger.Info("seeding finished",
		slog.String("file", seedCfg.File),
		slog.Bool("dry_run", seedCfg.DryRun),
		slog.Int("categories", len(pipeline.Results())),
		slog.Int("inserted", inserted),
		slog.Int("skipped", skipped),
		slog.Int("errors", failed),
		slog.Duration("duration", time.Since(start)),
	)

	if runErr != nil || pipeline.HasErrors() {
		return 1
	}
	return 0
}
