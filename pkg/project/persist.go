package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/tree"
)

// FileVersion is the project file format written and accepted by Open.
const FileVersion = "1.0"

const (
	xmlRootTag   = "novelWriterXML"
	timeStampFmt = "2006-01-02 15:04:05"
)

// Save writes the project file into the project directory, creating the
// directory if needed. The previous file is replaced in one step, so a
// failed save leaves it untouched.
func (p *Project) Save() error {
	if p.path == "" {
		p.alert("Project path not set, cannot save.", SeverityError)
		return ErrNoPath
	}

	if info, err := os.Stat(p.path); err != nil || !info.IsDir() {
		if err := os.MkdirAll(p.path, 0755); err != nil {
			p.alert(fmt.Sprintf("Could not create folder. %v", err), SeverityError)
			return fmt.Errorf("create project folder: %w", err)
		}
		p.logger.WithField("path", p.path).Info("Created folder")
	}

	p.logger.WithField("path", p.path).Debug("Saving project")

	data, err := p.encode()
	if err != nil {
		p.alert(fmt.Sprintf("Failed to save project. %v", err), SeverityError)
		return fmt.Errorf("encode project: %w", err)
	}

	saveFile := filepath.Join(p.path, FileName)
	if err := atomic.WriteFile(saveFile, bytes.NewReader(data)); err != nil {
		p.alert(fmt.Sprintf("Failed to save project. %v", err), SeverityError)
		return fmt.Errorf("write project file: %w", err)
	}

	p.setRecent()
	p.setStatus(fmt.Sprintf("Saved Project: %s", p.name))
	p.changed = false
	return nil
}

func (p *Project) encode() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement(xmlRootTag)
	root.CreateAttr("fileVersion", FileVersion)
	root.CreateAttr("appVersion", p.appVersion)
	root.CreateAttr("timeStamp", p.now().Format(timeStampFmt))

	meta := root.CreateElement("project")
	meta.CreateElement("name").SetText(p.name)
	meta.CreateElement("title").SetText(p.title)
	for _, author := range p.authors {
		if author == "" {
			continue
		}
		meta.CreateElement("author").SetText(author)
	}

	content := root.CreateElement("content")
	content.CreateAttr("count", strconv.Itoa(len(p.order)))
	for _, h := range p.order {
		item, ok := p.items[h]
		if !ok {
			p.logger.WithField("handle", h).Error("Skipping unknown handle in tree order")
			continue
		}
		item.Pack(content)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// Open loads a project from a project file or from a directory containing one.
// The tree is cleared first and stays empty if the file is rejected.
func (p *Project) Open(path string) error {
	fileName, ok := locateProjectFile(path)
	if !ok {
		p.alert(fmt.Sprintf("File not found: %s", fileName), SeverityError)
		return fmt.Errorf("open %s: %w", fileName, ErrNotFound)
	}

	p.Clear()

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(fileName); err != nil {
		p.alert(fmt.Sprintf("Failed to parse project file. %v", err), SeverityError)
		return fmt.Errorf("parse project file: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != xmlRootTag || root.SelectAttrValue("fileVersion", "") != FileVersion {
		p.alert("Project file does not appear to be a novelWriterXML file version 1.0", SeverityError)
		return fmt.Errorf("open %s: %w", fileName, ErrBadFormat)
	}

	p.path = filepath.Dir(fileName)
	p.logger.WithFields(logrus.Fields{
		"path":       p.path,
		"appVersion": root.SelectAttrValue("appVersion", ""),
	}).Debug("Opening project")

	for _, section := range root.ChildElements() {
		switch section.Tag {
		case "project":
			p.readMeta(section)
		case "content":
			p.readContent(section)
		}
	}

	p.setRecent()
	p.setStatus(fmt.Sprintf("Opened Project: %s", p.name))

	p.orphans = p.ScanProjectFolder()
	p.changed = false
	return nil
}

func locateProjectFile(path string) (string, bool) {
	if isFile(path) {
		return path, true
	}
	fileName := filepath.Join(path, FileName)
	return fileName, isFile(fileName)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (p *Project) readMeta(section *etree.Element) {
	for _, el := range section.ChildElements() {
		text := el.Text()
		if text == "" {
			continue
		}
		switch el.Tag {
		case "name":
			p.name = text
		case "title":
			p.title = text
		case "author":
			p.authors = append(p.authors, text)
		}
	}
}

func (p *Project) readContent(section *etree.Element) {
	for _, el := range section.ChildElements() {
		handle := el.SelectAttr("handle")
		if handle == nil {
			p.logger.Error("Skipping entry missing handle")
			continue
		}
		parent := el.SelectAttrValue("parent", "")

		item := p.newItem()
		readItem(item, el)
		if _, err := p.Append(handle.Value, parent, item); err != nil {
			p.logger.WithError(err).WithField("handle", handle.Value).Error("Skipping entry")
		}
	}
}

// readItem feeds every child element through the field dispatch. Status is
// applied last so it resolves against the item's final class.
func readItem(item *tree.Item, el *etree.Element) {
	var status *etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tree.FieldStatus.String() {
			status = child
			continue
		}
		item.SetFromTag(child.Tag, child.Text())
	}
	if status != nil {
		item.SetFromTag(status.Tag, status.Text())
	}
}
