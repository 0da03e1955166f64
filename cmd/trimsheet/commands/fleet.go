package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fleet: list the supported airframes.
func fleetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fleet",
		Short: "List supported aircraft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, reg := range appCtx.Fleet.Registrations() {
				p, ok := appCtx.Fleet.ProfileByRegistration(reg)
				if !ok {
					continue
				}
				fmt.Printf("%s  %s  empty %.2f kg @ %.3f cm (weighed %s)\n",
					p.Registration, p.Model, p.EmptyWeightKG, p.EmptyArmCM,
					p.WeighedAt.Format("02/01/2006"))
			}
			return nil
		},
	}
}
