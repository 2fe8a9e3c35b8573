//go:build integration
// +build integration

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/project"
	"github.com/mattsolo1/grove-novel/pkg/service"
)

func TestIntegration(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "novel")

	out := &bytes.Buffer{}
	svc, err := service.New(&service.Config{
		DataDir:    filepath.Join(tmpDir, "data"),
		AppVersion: "integration",
	}, service.NewConsoleHost(out, true), nil)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	defer svc.Close()

	var sceneHandle string

	t.Run("CreateProject", func(t *testing.T) {
		p, err := svc.CreateProject(projectDir, service.WithTitle("Integration"))
		if err != nil {
			t.Fatalf("Failed to create project: %v", err)
		}
		chars := p.FindRootByClass(models.ClassCharacter)
		if chars == "" {
			t.Fatal("Expected a character root")
		}
		sceneHandle, err = p.NewFile("Protagonist", models.ClassCharacter, chars)
		if err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
		if err := p.Save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}
	})

	t.Run("OrphanRecovery", func(t *testing.T) {
		docPath := filepath.Join(projectDir, project.DocumentPath("f00dfacecafe1"))
		if err := os.MkdirAll(filepath.Dir(docPath), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(docPath, []byte("lost"), 0644); err != nil {
			t.Fatal(err)
		}

		p, err := svc.OpenProject(projectDir)
		if err != nil {
			t.Fatalf("Failed to open project: %v", err)
		}
		if got := p.Orphans(); len(got) != 1 || got[0] != "f00dfacecafe1" {
			t.Fatalf("Expected one orphan, got %v", got)
		}
		if err := p.Save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		reopened, err := svc.OpenProject(projectDir)
		if err != nil {
			t.Fatalf("Failed to reopen project: %v", err)
		}
		if len(reopened.Orphans()) != 0 {
			t.Errorf("Expected orphan to be part of the tree after saving")
		}
		item, ok := reopened.Get(sceneHandle)
		if !ok || item.Layout() != models.LayoutNote {
			t.Errorf("Expected character file with note layout")
		}
	})
}
