package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glottalab/glotta/internal/store"
)

func newRunsCmd(openDB openDBFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past evaluation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("run history database unavailable: %w", err)
			}
			runs, err := store.NewRunStore(db).ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs recorded")
				return nil
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  ratio=%.2f  %d/%d  %.2f%%  %s\n",
					r.StartedAt, r.ID[:8],
					r.AxiomRatio, r.Correct, r.Total, r.Accuracy*100, r.Dataset)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list")

	return cmd
}
