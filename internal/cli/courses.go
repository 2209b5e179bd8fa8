package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newCoursesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courses [filter]",
		Short: "Suggest course codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ""
			if len(args) == 1 {
				q = args[0]
			}
			courses, err := a.client.Courses(cmd.Context(), q)
			if err != nil {
				return err
			}
			for _, c := range courses {
				fmt.Fprintln(a.out, c)
			}
			return nil
		},
	}
}
