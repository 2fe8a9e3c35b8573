package project

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/tree"
)

// NewRoot adds a top-level root item of the given class.
func (p *Project) NewRoot(name string, class models.ItemClass) (string, error) {
	item := p.newItem()
	item.SetName(name)
	item.SetType(models.TypeRoot)
	item.SetClass(class)
	item.SetStatus("")
	return p.Append("", "", item)
}

// NewFolder adds a folder below parent.
func (p *Project) NewFolder(name string, class models.ItemClass, parent string) (string, error) {
	item := p.newItem()
	item.SetName(name)
	item.SetType(models.TypeFolder)
	item.SetClass(class)
	item.SetStatus("")
	return p.Append("", parent, item)
}

// NewFile adds a document below parent. Novel documents default to the
// scene layout, everything else to notes.
func (p *Project) NewFile(name string, class models.ItemClass, parent string) (string, error) {
	item := p.newItem()
	item.SetName(name)
	item.SetType(models.TypeFile)
	if class == models.ClassNovel {
		item.SetLayout(models.LayoutScene)
	} else {
		item.SetLayout(models.LayoutNote)
	}
	item.SetClass(class)
	item.SetStatus("")
	return p.Append("", parent, item)
}

// AddTrash adds the trash root.
func (p *Project) AddTrash() (string, error) {
	item := p.newItem()
	item.SetName("Trash")
	item.SetType(models.TypeTrash)
	item.SetClass(models.ClassTrash)
	item.SetStatus("")
	return p.Append("", "", item)
}

// NewProject clears the project and populates it with the default roots,
// a chapter folder and a first scene.
func (p *Project) NewProject() error {
	p.Clear()

	novel, err := p.NewRoot("Novel", models.ClassNovel)
	if err != nil {
		return err
	}
	for _, r := range []struct {
		name  string
		class models.ItemClass
	}{
		{"Characters", models.ClassCharacter},
		{"Plot", models.ClassPlot},
		{"World", models.ClassWorld},
	} {
		if _, err := p.NewRoot(r.name, r.class); err != nil {
			return err
		}
	}
	chapter, err := p.NewFolder("New Chapter", models.ClassNovel, novel)
	if err != nil {
		return err
	}
	_, err = p.NewFile("New Scene", models.ClassNovel, chapter)
	return err
}

// Append links item into the tree. A missing handle is generated; an empty
// parent makes the item top-level. Root and trash indices are updated in the
// same step and the project is marked as changed.
func (p *Project) Append(handle, parent string, item *tree.Item) (string, error) {
	handle = checkHandle(handle)
	parent = checkHandle(parent)

	if handle == "" {
		var err error
		if handle, err = p.makeHandle(); err != nil {
			p.logger.WithError(err).Error("Could not add item")
			return "", err
		}
	} else if _, exists := p.items[handle]; exists {
		p.logger.WithField("handle", handle).Error("Handle already in use")
		return "", fmt.Errorf("append %s: %w", handle, ErrDuplicateHandle)
	}

	p.logger.WithFields(logrus.Fields{"handle": handle, "parent": parent}).Debug("Adding entry")

	item.SetHandle(handle)
	item.SetParent(parent)

	p.items[handle] = item
	p.order = append(p.order, handle)

	switch item.Type() {
	case models.TypeRoot:
		p.roots = append(p.roots, handle)
	case models.TypeTrash:
		if p.trash == "" {
			p.trash = handle
		} else {
			p.logger.WithField("handle", handle).Error("Only one trash folder allowed")
		}
	}

	p.changed = true
	return handle, nil
}

// Get returns the item for handle. A miss is logged and reported via ok.
func (p *Project) Get(handle string) (*tree.Item, bool) {
	item, ok := p.items[handle]
	if !ok {
		p.logger.WithField("handle", handle).Error("No tree item with handle")
	}
	return item, ok
}

// Has reports whether handle is in the tree without logging a miss.
func (p *Project) Has(handle string) bool {
	_, ok := p.items[handle]
	return ok
}

// FindRootByClass returns the first root of class in root order, or "".
func (p *Project) FindRootByClass(class models.ItemClass) string {
	for _, h := range p.roots {
		if p.items[h].Class() == class {
			return h
		}
	}
	return ""
}

// IsRootClassUnique reports whether a new root of class may be added.
// Custom roots may always be repeated.
func (p *Project) IsRootClassUnique(class models.ItemClass) bool {
	if class == models.ClassCustom {
		return true
	}
	return p.FindRootByClass(class) == ""
}

// SetOrder replaces the handle sequence. Callers pass a permutation of the
// existing handles; a length mismatch is only logged.
func (p *Project) SetOrder(order []string) {
	if len(order) != len(p.order) {
		p.logger.WithFields(logrus.Fields{
			"old": len(p.order),
			"new": len(order),
		}).Warn("Size of new and old tree order does not match")
	}
	p.order = append([]string(nil), order...)
	p.changed = true
}
