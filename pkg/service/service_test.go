package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/project"
)

func newTestService(t *testing.T, cfg *Config) (*Service, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(t.TempDir(), "data")
	}
	cfg.AppVersion = "1.2.3"

	logger, _ := test.NewNullLogger()
	out := &bytes.Buffer{}
	svc, err := New(cfg, NewConsoleHost(out, false), logrus.NewEntry(logger))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc, out
}

func TestCreateAndOpenProject(t *testing.T) {
	svc, out := newTestService(t, nil)
	dir := filepath.Join(t.TempDir(), "my-book")

	p, err := svc.CreateProject(dir, WithTitle("A Book"), WithAuthors("Jane Doe"), WithTrash())
	require.NoError(t, err)
	assert.Equal(t, "my-book", p.Name())
	assert.NotEmpty(t, p.TrashHandle())
	assert.FileExists(t, filepath.Join(dir, project.FileName))
	assert.Contains(t, out.String(), "Saved Project: my-book")

	opened, err := svc.OpenProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "A Book", opened.BookTitle())
	assert.Equal(t, []string{"Jane Doe"}, opened.Authors())
	assert.Equal(t, 7, opened.Len())
	assert.NotEmpty(t, opened.FindRootByClass(models.ClassWorld))

	recent, err := svc.RecentProjects(0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "my-book", recent[0].Name)
	assert.Equal(t, 2, recent[0].OpenCount)
}

func TestCreateProjectRefusesOverwrite(t *testing.T) {
	svc, _ := newTestService(t, nil)
	dir := t.TempDir()
	_, err := svc.CreateProject(dir, WithName("First"))
	require.NoError(t, err)

	_, err = svc.CreateProject(dir)
	assert.Error(t, err)
}

func TestOpenProjectMissing(t *testing.T) {
	svc, out := newTestService(t, nil)
	_, err := svc.OpenProject(t.TempDir())
	assert.ErrorIs(t, err, project.ErrNotFound)
	assert.Contains(t, out.String(), "File not found")
	assert.Len(t, svc.Host.Alerts, 1)
}

func TestStatusFileIsUsed(t *testing.T) {
	statusFile := filepath.Join(t.TempDir(), "status.yaml")
	require.NoError(t, os.WriteFile(statusFile, []byte("status:\n  - label: Outline\n    color: [1, 1, 1]\n"), 0644))

	svc, _ := newTestService(t, &Config{StatusFile: statusFile})
	p, err := svc.CreateProject(t.TempDir())
	require.NoError(t, err)

	novel, ok := p.Get(p.FindRootByClass(models.ClassNovel))
	require.True(t, ok)
	assert.Equal(t, "Outline", novel.Status())
}

func TestStatusFileError(t *testing.T) {
	_, err := New(&Config{
		DataDir:    t.TempDir(),
		StatusFile: filepath.Join(t.TempDir(), "missing.yaml"),
	}, nil, nil)
	assert.Error(t, err)
}

func TestConsoleHostQuiet(t *testing.T) {
	out := &bytes.Buffer{}
	host := NewConsoleHost(out, true)
	host.SetStatus("Saved Project: x")
	assert.Empty(t, out.String())
	assert.Equal(t, "Saved Project: x", host.LastStatus)

	host.MakeAlert("Found 1 orphaned file(s) in project folder!", project.SeverityWarning)
	assert.Contains(t, out.String(), "Found 1 orphaned file(s)")
	assert.Contains(t, out.String(), "Warning:")

	host.MakeAlert("File not found", project.SeverityError)
	assert.Contains(t, out.String(), "Error:")
	assert.Len(t, host.Alerts, 2)
}
