package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/service"
)

func NewAddCmd(svc **service.Service) *cobra.Command {
	var (
		projectDir string
		className  string
		parent     string
	)

	cmd := &cobra.Command{
		Use:   "add <root|folder|file|trash> [name]",
		Short: "Add an item to the project tree",
		Long: `Add a root, folder, file or the trash folder to a project.

Folders and files inherit the class of their parent unless --class is given.

Examples:
  novel add root "Timeline" --class TIMELINE
  novel add folder "Chapter Two" --parent 5f2c7d0e1a9b3
  novel add file "Scene One" --parent 7a1d9c3e20f4b`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := (*svc).OpenProject(projectDir)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 1 {
				name = args[1]
			}

			handle, err := addItem(p, args[0], name, className, parent)
			if err != nil {
				return err
			}
			if err := p.Save(); err != nil {
				return fmt.Errorf("save project: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), handle)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectDir, "project", "p", ".", "Project directory or file")
	cmd.Flags().StringVarP(&className, "class", "c", "", "Item class (NOVEL, CHARACTER, PLOT, WORLD, CUSTOM, ...)")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent handle for folders and files")

	return cmd
}

func addItem(p *project.Project, kind, name, className, parent string) (string, error) {
	if kind == "trash" {
		if p.TrashHandle() != "" {
			return "", fmt.Errorf("project already has a trash folder")
		}
		return p.AddTrash()
	}
	if name == "" {
		return "", fmt.Errorf("a name is required for %s items", kind)
	}

	var class models.ItemClass
	if className != "" {
		var err error
		if class, err = parseClass(className); err != nil {
			return "", err
		}
	}

	if kind == "root" {
		if className == "" {
			return "", fmt.Errorf("--class is required for root items")
		}
		if !p.IsRootClassUnique(class) {
			return "", fmt.Errorf("a %s root already exists", class)
		}
		return p.NewRoot(name, class)
	}

	if parent == "" {
		return "", fmt.Errorf("--parent is required for %s items", kind)
	}
	parentItem, ok := p.Get(parent)
	if !ok {
		return "", fmt.Errorf("no item with handle %s", parent)
	}
	if className == "" {
		class = parentItem.Class()
	}

	switch kind {
	case "folder":
		return p.NewFolder(name, class, parent)
	case "file":
		return p.NewFile(name, class, parent)
	default:
		return "", fmt.Errorf("unknown item kind %q", kind)
	}
}
