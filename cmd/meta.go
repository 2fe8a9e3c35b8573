package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/service"
)

func NewMetaCmd(svc **service.Service) *cobra.Command {
	var (
		name    string
		title   string
		authors []string
	)

	cmd := &cobra.Command{
		Use:   "meta [project]",
		Short: "Show or change the project name, title and authors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := (*svc).OpenProject(projectArg(args))
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.SetProjectName(name)
			}
			if cmd.Flags().Changed("title") {
				p.SetBookTitle(title)
			}
			if cmd.Flags().Changed("author") {
				p.SetBookAuthors(strings.Join(authors, "\n"))
			}

			if p.Changed() {
				if err := p.Save(); err != nil {
					return fmt.Errorf("save project: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:    %s\n", p.Name())
			fmt.Fprintf(out, "Title:   %s\n", p.BookTitle())
			fmt.Fprintf(out, "Authors: %s\n", strings.Join(p.Authors(), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Working name")
	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringArrayVar(&authors, "author", nil, "Book author (repeatable, replaces the list)")

	return cmd
}
