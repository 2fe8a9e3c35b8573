package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/service"
)

func NewNewCmd(svc **service.Service) *cobra.Command {
	var (
		name    string
		title   string
		authors []string
		trash   bool
	)

	cmd := &cobra.Command{
		Use:   "new [dir]",
		Short: "Create a new project",
		Long: `Create a new project with the default Novel, Characters, Plot and World
roots, a first chapter and a first scene.

Examples:
  novel new my-book
  novel new my-book --title "The Long Winter" --author "Jane Doe"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			dir := projectArg(args)

			options := []service.CreateOption{
				service.WithName(name),
				service.WithTitle(title),
				service.WithAuthors(strings.Join(authors, "\n")),
			}
			if trash {
				options = append(options, service.WithTrash())
			}

			p, err := s.CreateProject(dir, options...)
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project '%s' at %s\n", p.Name(), p.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Working name (default is the directory name)")
	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringArrayVar(&authors, "author", nil, "Book author (repeatable)")
	cmd.Flags().BoolVar(&trash, "trash", false, "Also create the trash folder")

	return cmd
}
