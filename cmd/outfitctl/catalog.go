package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"boutique-backend/internal/bootstrap"
	"boutique-backend/internal/catalog"
	"boutique-backend/internal/shared/storage/db"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog snapshot and database tools",
	}
	cmd.AddCommand(newCatalogExportCmd())
	cmd.AddCommand(newCatalogLoadDBCmd())
	return cmd
}

func newCatalogExportCmd() *cobra.Command {
	var (
		key      string
		fromSeed bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a JSON snapshot to the object store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := loadConfig()
			if fromSeed {
				cfg.CatalogSource = "memory"
			}
			app, err := bootstrap.BuildServices(ctx, cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			items, err := app.CatalogRepo.All(ctx)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
			if strings.TrimSpace(key) == "" {
				key = cfg.CatalogObjectKey
			}
			n, err := catalog.ExportSnapshot(ctx, app.Store, key, items)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d items (%d bytes) to %s\n", len(items), n, key)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "object key (defaults to CATALOG_OBJECT_KEY)")
	cmd.Flags().BoolVar(&fromSeed, "seed", false, "export the embedded seed catalog instead of the configured source")
	return cmd
}

func newCatalogLoadDBCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "load-db",
		Short: "Upsert a catalog snapshot (or the seed catalog) into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := loadConfig()

			var items []catalog.Item
			if strings.TrimSpace(key) == "" {
				seed, err := catalog.SeedItems()
				if err != nil {
					return err
				}
				items = seed
			} else {
				cfg.CatalogSource = "memory"
				app, err := bootstrap.BuildServices(ctx, cfg)
				if err != nil {
					return err
				}
				defer app.Close()
				repo, err := catalog.LoadSnapshot(ctx, app.Store, key)
				if err != nil {
					return err
				}
				if items, err = repo.All(ctx); err != nil {
					return err
				}
			}

			sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultCLIOptions()))
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			if err := db.RunMigrations(ctx, sqlDB); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			if err := (&catalog.PGRepo{DB: sqlDB}).Upsert(ctx, items); err != nil {
				return fmt.Errorf("upsert catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d items into catalog_items\n", len(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "object key of a snapshot to load (defaults to the seed catalog)")
	return cmd
}
