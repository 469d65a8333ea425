package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"restaurant-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Applies pending versioned migrations with the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(*dir)))
	if err != nil {
		logger.Error("Failed to prepare migration directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), "atlas")
	if err != nil {
		logger.Error("Failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: "file://migrations",
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun,
	)
}
