package main

import (
	"fmt"

	"github.com/leafthq/leaft/internal/pricing"
	"github.com/spf13/cobra"
)

func newPriceCmd() *cobra.Command {
	var (
		seats int
		plan  string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Quote the seat price for a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seats < 1 {
				return fmt.Errorf("--seats must be at least 1")
			}
			planType, err := pricing.ParsePlanType(plan)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), pricing.NewQuote(seats, planType))
		},
	}

	cmd.Flags().IntVar(&seats, "seats", 1, "Number of seats")
	cmd.Flags().StringVar(&plan, "plan", "monthly", "Plan type: monthly or annual")
	return cmd
}
