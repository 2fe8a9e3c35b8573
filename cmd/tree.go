package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/service"
)

type itemView struct {
	Handle    string `json:"handle"`
	Parent    string `json:"parent,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Class     string `json:"class"`
	Layout    string `json:"layout,omitempty"`
	Status    string `json:"status"`
	WordCount int    `json:"word_count,omitempty"`
	Depth     int    `json:"depth"`
}

func NewTreeCmd(svc **service.Service) *cobra.Command {
	var treeJSON bool

	cmd := &cobra.Command{
		Use:     "tree [project]",
		Short:   "Show the project tree",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := (*svc).OpenProject(projectArg(args))
			if err != nil {
				return err
			}

			views := buildViews(p)
			if treeJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			return printTree(cmd.OutOrStdout(), p, views)
		},
	}

	cmd.Flags().BoolVar(&treeJSON, "json", false, "Output in JSON format")

	return cmd
}

// buildViews lists items depth-first, children following the tree order.
// Items whose parent is missing are shown at the top level.
func buildViews(p *project.Project) []itemView {
	order := p.Order()
	children := make(map[string][]string)
	var top []string
	for _, h := range order {
		item, ok := p.Get(h)
		if !ok {
			continue
		}
		if item.HasParent() && p.Has(item.Parent()) {
			children[item.Parent()] = append(children[item.Parent()], h)
			continue
		}
		top = append(top, h)
	}

	var views []itemView
	visited := make(map[string]bool)
	var walk func(h string, depth int)
	walk = func(h string, depth int) {
		if visited[h] {
			return
		}
		visited[h] = true
		item, _ := p.Get(h)
		v := itemView{
			Handle: h,
			Parent: item.Parent(),
			Name:   item.Name(),
			Type:   item.Type().String(),
			Class:  item.Class().String(),
			Status: item.Status(),
			Depth:  depth,
		}
		if item.IsFile() {
			v.Layout = item.Layout().String()
			v.WordCount = item.WordCount()
		}
		views = append(views, v)
		for _, c := range children[h] {
			walk(c, depth+1)
		}
	}
	for _, h := range top {
		walk(h, 0)
	}
	return views
}

func printTree(out io.Writer, p *project.Project, views []itemView) error {
	title := p.BookTitle()
	if title == "" {
		title = p.Name()
	}
	fmt.Fprintf(out, "%s (%d items)\n\n", title, p.Len())

	// STATUS stays last so colour codes do not skew the column widths.
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCLASS\tKIND\tWORDS\tHANDLE\tSTATUS")
	for _, v := range views {
		kind := models.Label(v.Type)
		if v.Layout != "" {
			kind = models.Label(v.Layout)
		}
		words := ""
		if v.Type == models.TypeFile.String() {
			words = fmt.Sprintf("%d", v.WordCount)
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t%s\n",
			strings.Repeat("  ", v.Depth), v.Name,
			models.Label(v.Class), kind, words, v.Handle,
			renderStatus(p, v))
	}
	return w.Flush()
}

// statusColor returns the hex colour of the item's status, or "" when the
// vocabulary has no entry for it. Novel items use the status vocabulary,
// everything else the import vocabulary.
func statusColor(p *project.Project, v itemView) string {
	vocab := p.ImportItems()
	if v.Class == models.ClassNovel.String() {
		vocab = p.StatusItems()
	}
	rgb, ok := vocab.Color(v.Status)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

func renderStatus(p *project.Project, v itemView) string {
	color := statusColor(p, v)
	if color == "" {
		return v.Status
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(v.Status)
}
