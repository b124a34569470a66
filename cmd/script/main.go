package main

import (
	"context"
	"log"

	"investease/cmd"
	"investease/internal/repository"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "script",
		Short: "one-off maintenance jobs",
	}
	rootCmd.AddCommand(refreshQuotesCmd())
	rootCmd.AddCommand(recomputeScoresCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func refreshQuotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-quotes [symbols...]",
		Short: "pull fresh quotes from the market feed into the quote table",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			result, err := handler.QuoteService.RefreshQuotes(context.Background(), args)
			if err != nil {
				return err
			}
			log.Printf("refreshed %d quotes (%d failed)", result.Updated, result.Failed)
			return nil
		},
	}
}

func recomputeScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute-scores",
		Short: "recompute the confidence score for every user",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			profileRepository := repository.NewProfileRepository(handler.Db)
			userIDs, err := profileRepository.ListUserIDs()
			if err != nil {
				return err
			}

			ctx := context.Background()
			for _, userID := range userIDs {
				if _, err := handler.ConfidenceService.RecalculateAfterTrade(ctx, userID); err != nil {
					log.Printf("failed to recompute score for %s: %v", userID, err)
				}
			}
			log.Printf("recomputed scores for %d users", len(userIDs))
			return nil
		},
	}
}
