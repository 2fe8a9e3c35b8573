package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/service"
)

func NewReorderCmd(svc **service.Service) *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "reorder <handle>...",
		Short: "Replace the order of the project tree",
		Long: `Replace the order of the project tree. The handles must be a
permutation of all handles in the project.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := (*svc).OpenProject(projectDir)
			if err != nil {
				return err
			}
			if err := checkPermutation(p, args); err != nil {
				return err
			}

			p.SetOrder(args)
			if err := p.Save(); err != nil {
				return fmt.Errorf("save project: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectDir, "project", "p", ".", "Project directory or file")

	return cmd
}

func checkPermutation(p *project.Project, order []string) error {
	current := p.Order()
	if len(order) != len(current) {
		return fmt.Errorf("expected %d handles, got %d", len(current), len(order))
	}
	seen := make(map[string]bool, len(order))
	for _, h := range order {
		if seen[h] {
			return fmt.Errorf("handle %s given twice", h)
		}
		seen[h] = true
	}
	for _, h := range current {
		if !seen[h] {
			return fmt.Errorf("handle %s missing from new order", h)
		}
	}
	return nil
}
