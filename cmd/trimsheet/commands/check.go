package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trimsheet/internal/domain"
)

// check <loadsheet.yaml>: compute and print, no PDF.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <loadsheet.yaml>",
		Short: "Compute totals, CoG and the envelope verdict without writing a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := appCtx.Reports.Check(args[0], aircraft)
			if err != nil {
				return err
			}
			fmt.Printf("Aircraft:  %s (%s)\n", r.Profile.Registration, r.Profile.Model)
			fmt.Printf("Takeoff:   %.2f kg, moment %.2f, CoG %.2f cm\n",
				r.WithFuel.TotalWeightKG, r.WithFuel.TotalMomentKGCM, r.WithFuel.CoGCM)
			fmt.Printf("Zero fuel: %.2f kg, CoG %.2f cm\n",
				r.ZeroFuel.TotalWeightKG, r.ZeroFuel.CoGCM)
			printVerdict(r)
			return nil
		},
	}
}

func printVerdict(r domain.Report) {
	switch {
	case !r.Verdict.Evaluated:
		fmt.Println("Envelope:  not evaluated (no envelope defined for this type)")
	case r.Verdict.Inside:
		fmt.Printf("Envelope:  within limits (%.1f from the nearest boundary)\n", r.Verdict.BoundaryDistance)
	default:
		fmt.Printf("Envelope:  OUTSIDE LIMITS (%.1f from the nearest boundary)\n", r.Verdict.BoundaryDistance)
	}
}
