package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/models"
)

const (
	dataDirPrefix = "data_"
	docFileSuffix = ".nwd"
	// "data_X/" + 12 handle characters + "_main.nwd"
	docPathLength = 28
)

// DocumentPath returns the path of a handle's document file relative to
// the project directory.
func DocumentPath(handle string) string {
	if len(handle) != handleLength {
		return ""
	}
	return filepath.Join(dataDirPrefix+handle[:1], handle[1:]+"_main"+docFileSuffix)
}

// handleFromDocumentPath recovers the handle from a relative document path.
func handleFromDocumentPath(rel string) (string, bool) {
	if len(rel) != docPathLength {
		return "", false
	}
	return rel[5:6] + rel[7:19], true
}

// ScanProjectFolder compares the document files on disk with the tree. Every
// document without a tree item gets a placeholder file item so it stays
// reachable. It returns the recovered handles.
func (p *Project) ScanProjectFolder() []string {
	if p.path == "" {
		return nil
	}

	entries, err := os.ReadDir(p.path)
	if err != nil {
		p.logger.WithError(err).WithField("path", p.path).Warn("Could not scan project folder")
		return nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), dataDirPrefix) {
			continue
		}
		dataDir := filepath.Join(p.path, entry.Name())
		docs, err := os.ReadDir(dataDir)
		if err != nil {
			p.logger.WithError(err).WithField("path", dataDir).Warn("Could not scan data folder")
			continue
		}
		for _, doc := range docs {
			if doc.Type().IsRegular() && strings.HasSuffix(doc.Name(), docFileSuffix) {
				files = append(files, filepath.Join(entry.Name(), doc.Name()))
			}
		}
	}

	var orphans []string
	seen := make(map[string]bool)
	for _, rel := range files {
		handle, ok := handleFromDocumentPath(rel)
		if !ok {
			p.logger.WithField("file", rel).Warn("Skipping file")
			continue
		}
		fields := logrus.Fields{"file": rel, "handle": handle}
		if _, known := p.items[handle]; known {
			p.logger.WithFields(fields).Debug("Checking file: OK")
			continue
		}
		if seen[handle] {
			continue
		}
		seen[handle] = true
		p.logger.WithFields(fields).Debug("Checking file: Orphaned")
		orphans = append(orphans, handle)
	}

	if len(orphans) == 0 {
		p.logger.Debug("File check OK")
		return nil
	}
	p.alert(fmt.Sprintf("Found %d orphaned file(s) in project folder!", len(orphans)), SeverityWarning)

	var recovered []string
	for i, handle := range orphans {
		item := p.newItem()
		item.SetName(fmt.Sprintf("Orphaned File %d", i+1))
		item.SetType(models.TypeFile)
		item.SetClass(models.ClassNone)
		item.SetLayout(models.LayoutNone)
		item.SetStatus("")
		if _, err := p.Append(handle, "", item); err != nil {
			p.logger.WithError(err).WithField("handle", handle).Error("Could not recover orphaned file")
			continue
		}
		recovered = append(recovered, handle)
	}
	return recovered
}
