package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/service"
)

func NewCheckCmd(svc **service.Service) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "check [project]",
		Short: "Check the project folder for orphaned documents",
		Long: `Compare the document files in the project's data folders with the
project tree. Documents without a tree entry are added as "Orphaned File"
items. Use --save to keep them in the project file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := (*svc).OpenProject(projectArg(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			orphans := p.Orphans()
			if len(orphans) == 0 {
				fmt.Fprintln(out, "File check OK")
				return nil
			}

			for _, h := range orphans {
				fmt.Fprintf(out, "orphaned: %s (%s)\n", h, project.DocumentPath(h))
			}
			if save {
				if err := p.Save(); err != nil {
					return fmt.Errorf("save project: %w", err)
				}
				fmt.Fprintf(out, "Recovered %d orphaned file(s)\n", len(orphans))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the recovered items into the project file")

	return cmd
}
