package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"boutique-backend/internal/bootstrap"
	"boutique-backend/internal/catalog"
	"boutique-backend/internal/outfits"
)

func newRecommendCmd() *cobra.Command {
	var (
		style string
		ids   []string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ask the stylist for an outfit and print the validated result",
		Long: `Runs one outfit request against the configured LLM provider and catalog.
Without --ids, the in-stock catalog items are used as candidates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := bootstrap.BuildServices(ctx, loadConfig())
			if err != nil {
				return err
			}
			defer app.Close()

			if len(ids) == 0 {
				page, err := app.CatalogService.List(ctx, catalog.Filter{Limit: catalog.MaxLimit})
				if err != nil {
					return fmt.Errorf("list catalog: %w", err)
				}
				for _, item := range page.Items {
					ids = append(ids, item.ID)
				}
			}

			result := app.OutfitService.Recommend(ctx, outfits.Request{StylePreference: style, CandidateIDs: ids})
			return writeResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "free-text style preference")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "candidate item ids (comma separated)")
	return cmd
}

type resultOutput struct {
	Recommendations []outfits.Suggestion `json:"recommendations"`
	Reason          string               `json:"reason,omitempty"`
	Failure         string               `json:"failure,omitempty"`
}

func writeResult(w io.Writer, result outfits.RecommendationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultOutput{
		Recommendations: result.Recommendations,
		Reason:          result.Reason,
		Failure:         string(result.Failure),
	})
}
