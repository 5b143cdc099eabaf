package cli

import (
	"encoding/json"
	"fmt"

	"atlas-hotel/cmd/bootstrap"
	"atlas-hotel/cmd/bootstrap/components"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func newQuoteCmd() *cobra.Command {
	var req pricing.StayRequest

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the estimate of a stay as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			calc, err := components.NewCalculator(cfg)
			if err != nil {
				return err
			}
			est, ok := calc.Estimate(req)
			if !ok {
				return fmt.Errorf("invalid stay: check dates, room type and guest count")
			}
			return printJSON(cmd, est)
		},
	}

	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.RoomType, "room", "", "room type (classic, deluxe, suite)")
	cmd.Flags().IntVar(&req.Guests, "guests", 1, "number of guests")
	cmd.Flags().StringSliceVar(&req.Addons, "addon", nil, "add-on, repeatable")
	cmd.Flags().StringVar(&req.PromoCode, "promo", "", "promo code")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")
	_ = cmd.MarkFlagRequired("room")
	return cmd
}

func newAvailabilityCmd() *cobra.Command {
	var checkIn, checkOut string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Print remaining rooms per type for a stay, read from the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			store, cleanup, err := bootstrap.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			calc, err := components.NewCalculator(cfg)
			if err != nil {
				return err
			}
			result, err := queries.NewStayQueries(store, calc).Availability(cmd.Context(), checkIn, checkOut)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
