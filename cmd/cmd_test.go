package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/service"
	"github.com/mattsolo1/grove-novel/pkg/tree"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	svc, _ := newLoggedService(t)
	return svc
}

func newLoggedService(t *testing.T) (*service.Service, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	svc, err := service.New(&service.Config{
		DataDir:    filepath.Join(t.TempDir(), "data"),
		AppVersion: "test",
	}, service.NewConsoleHost(&bytes.Buffer{}, true), logrus.NewEntry(logger))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc, hook
}

func newTestProject(t *testing.T, svc *service.Service) *project.Project {
	t.Helper()
	p, err := svc.CreateProject(filepath.Join(t.TempDir(), "book"))
	require.NoError(t, err)
	return p
}

func TestAddItem(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)
	novel := p.FindRootByClass(models.ClassNovel)

	_, err := addItem(p, "root", "Second Novel", "novel", "")
	assert.Error(t, err, "novel root must be unique")

	custom1, err := addItem(p, "root", "Research", "CUSTOM", "")
	require.NoError(t, err)
	custom2, err := addItem(p, "root", "More Research", "CUSTOM", "")
	require.NoError(t, err)
	assert.NotEqual(t, custom1, custom2)

	_, err = addItem(p, "root", "No Class", "", "")
	assert.Error(t, err)
	_, err = addItem(p, "root", "Bad Class", "poetry", "")
	assert.Error(t, err)

	chapter, err := addItem(p, "folder", "Chapter Two", "", novel)
	require.NoError(t, err)
	scene, err := addItem(p, "file", "Scene One", "", chapter)
	require.NoError(t, err)
	item, _ := p.Get(scene)
	assert.Equal(t, models.ClassNovel, item.Class())
	assert.Equal(t, models.LayoutScene, item.Layout())

	note, err := addItem(p, "file", "Notes", "WORLD", chapter)
	require.NoError(t, err)
	item, _ = p.Get(note)
	assert.Equal(t, models.LayoutNote, item.Layout())

	_, err = addItem(p, "file", "Nowhere", "", "")
	assert.Error(t, err)
	_, err = addItem(p, "file", "Nowhere", "", "0000000000000")
	assert.Error(t, err)
	_, err = addItem(p, "page", "Odd", "", novel)
	assert.Error(t, err)

	trash, err := addItem(p, "trash", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, trash, p.TrashHandle())
	_, err = addItem(p, "trash", "", "", "")
	assert.Error(t, err)
}

func TestCheckPermutation(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)
	order := p.Order()

	reversed := make([]string, len(order))
	for i, h := range order {
		reversed[len(order)-1-i] = h
	}
	assert.NoError(t, checkPermutation(p, reversed))
	assert.Error(t, checkPermutation(p, order[1:]))

	dup := append([]string{order[0]}, order[:len(order)-1]...)
	assert.Error(t, checkPermutation(p, dup))

	foreign := append([]string{"zzzzzzzzzzzzz"}, order[1:]...)
	assert.Error(t, checkPermutation(p, foreign))
}

func TestBuildViewsDepthFirst(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)

	views := buildViews(p)
	require.Len(t, views, 6)
	assert.Equal(t, "Novel", views[0].Name)
	assert.Equal(t, 0, views[0].Depth)
	assert.Equal(t, "New Chapter", views[1].Name)
	assert.Equal(t, 1, views[1].Depth)
	assert.Equal(t, "New Scene", views[2].Name)
	assert.Equal(t, 2, views[2].Depth)
	assert.Equal(t, "SCENE", views[2].Layout)
	assert.Equal(t, "Characters", views[3].Name)
}

func TestBuildViewsDanglingParentIsTopLevel(t *testing.T) {
	svc, hook := newLoggedService(t)
	p := newTestProject(t, svc)

	item := tree.NewItem(tree.Vocabulary{Novel: p.StatusItems(), Other: p.ImportItems()}, nil)
	item.SetName("Lost Scene")
	item.SetType(models.TypeFile)
	item.SetClass(models.ClassNovel)
	lost, err := p.Append("", "0000000000000", item)
	require.NoError(t, err)
	hook.Reset()

	views := buildViews(p)
	require.Len(t, views, 7)
	last := views[len(views)-1]
	assert.Equal(t, lost, last.Handle)
	assert.Equal(t, 0, last.Depth)
	assert.Empty(t, hook.Entries)
}

func TestStatusColorFollowsClass(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)

	assert.Equal(t, "#c89600", statusColor(p, itemView{Class: "NOVEL", Status: "Draft"}))
	assert.Equal(t, "#c83200", statusColor(p, itemView{Class: "CHARACTER", Status: "Minor"}))
	assert.Empty(t, statusColor(p, itemView{Class: "CHARACTER", Status: "Draft"}))
	assert.Empty(t, statusColor(p, itemView{Class: "NOVEL", Status: "Unknown"}))
}

func TestTreeCmdText(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)

	out := &bytes.Buffer{}
	cmd := NewTreeCmd(&svc)
	cmd.SetOut(out)
	cmd.SetArgs([]string{p.Path()})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "book (6 items)")
	assert.Contains(t, out.String(), "STATUS")
	assert.Contains(t, out.String(), "New Scene")
}

func TestTreeCmdJSON(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)

	out := &bytes.Buffer{}
	cmd := NewTreeCmd(&svc)
	cmd.SetOut(out)
	cmd.SetArgs([]string{p.Path(), "--json"})
	require.NoError(t, cmd.Execute())

	var views []itemView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	assert.Len(t, views, 6)
}

func TestMetaCmdUpdatesProject(t *testing.T) {
	svc := newTestService(t)
	p := newTestProject(t, svc)

	out := &bytes.Buffer{}
	cmd := NewMetaCmd(&svc)
	cmd.SetOut(out)
	cmd.SetArgs([]string{p.Path(), "--title", "New Title", "--author", "A", "--author", "B"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Authors: A, B")

	reopened, err := svc.OpenProject(p.Path())
	require.NoError(t, err)
	assert.Equal(t, "New Title", reopened.BookTitle())
	assert.Equal(t, []string{"A", "B"}, reopened.Authors())
}

func TestAuthorFlagKeepsCommas(t *testing.T) {
	svc := newTestService(t)
	dir := filepath.Join(t.TempDir(), "saga")

	newCmd := NewNewCmd(&svc)
	newCmd.SetOut(&bytes.Buffer{})
	newCmd.SetArgs([]string{dir, "--author", "Tolkien, J.R.R."})
	require.NoError(t, newCmd.Execute())

	created, err := svc.OpenProject(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tolkien, J.R.R."}, created.Authors())

	metaCmd := NewMetaCmd(&svc)
	metaCmd.SetOut(&bytes.Buffer{})
	metaCmd.SetArgs([]string{dir, "--author", "Le Guin, Ursula K.", "--author", "Jane Doe"})
	require.NoError(t, metaCmd.Execute())

	reopened, err := svc.OpenProject(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Le Guin, Ursula K.", "Jane Doe"}, reopened.Authors())
}

func TestParseClass(t *testing.T) {
	c, err := parseClass(" character ")
	require.NoError(t, err)
	assert.Equal(t, models.ClassCharacter, c)

	_, err = parseClass("villain")
	assert.Error(t, err)
}
