package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/service"
)

func NewRecentCmd(svc **service.Service) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := (*svc).RecentProjects(limit)
			if err != nil {
				return fmt.Errorf("list recent projects: %w", err)
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent projects")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLAST USED\tOPENED\tPATH")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.Name, p.LastUsed.Format("2006-01-02 15:04"), p.OpenCount, p.Path)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of projects to show")

	return cmd
}
