package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"boutique-backend/internal/shared/config"
	"boutique-backend/internal/shared/telemetry"
)

// loadConfig is swapped in tests.
var loadConfig = config.Load

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "outfitctl",
		Short:         "outfitctl - AMS Boutique outfit and catalog tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRecommendCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newCatalogCmd())
	return root
}

func main() {
	cfg := loadConfig()
	telemetry.Configure(cfg.LogLevel)
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		telemetry.Sync()
		os.Exit(1)
	}
}
