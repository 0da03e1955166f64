package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// report <loadsheet.yaml>: run the full pipeline and write the PDF.
func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <loadsheet.yaml>",
		Short: "Compute weight and balance and write the trim sheet PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, path, err := appCtx.Reports.Generate(args[0], aircraft)
			if err != nil {
				return err
			}
			fmt.Printf("Trim sheet written to %s\n", path)
			fmt.Printf("Takeoff: %.2f kg, CoG %.2f cm\n", r.WithFuel.TotalWeightKG, r.WithFuel.CoGCM)
			printVerdict(r)
			return nil
		},
	}
}
