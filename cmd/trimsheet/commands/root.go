package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"trimsheet/internal/app"
)

var (
	outDir   string
	aircraft string
	appCtx   *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "trimsheet",
		Short:        "Weight and balance trim sheets for the club's C172S fleet",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A .env in the working directory may supply defaults;
			// missing is fine.
			_ = godotenv.Load()
			if outDir == "" {
				outDir = os.Getenv("TRIMSHEET_OUT_DIR")
			}
			if outDir == "" {
				outDir = "."
			}
			if aircraft == "" {
				aircraft = os.Getenv("TRIMSHEET_AIRCRAFT")
			}

			var err error
			appCtx, err = app.NewWire(app.Config{OutDir: outDir})
			return err
		},
	}

	root.PersistentFlags().StringVar(&outDir, "out-dir", "", "output directory (default: working directory)")
	root.PersistentFlags().StringVar(&aircraft, "aircraft", "", "override the registration named in the load sheet")

	root.AddCommand(reportCmd(), checkCmd(), fleetCmd())
	return root.Execute()
}
