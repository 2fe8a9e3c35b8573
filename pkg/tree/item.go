package tree

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/models"
)

// StatusChecker validates a status label against a vocabulary.
type StatusChecker interface {
	CheckEntry(label string) string
}

// Vocabulary holds the status vocabularies of the owning project. Novel
// items resolve their status against Novel, everything else against Other.
type Vocabulary struct {
	Novel StatusChecker
	Other StatusChecker
}

// Item represents a single node in the project tree: a root, folder, document or the trash.
type Item struct {
	name   string
	handle string
	parent string
	order  int

	itemType models.ItemType
	class    models.ItemClass
	layout   models.ItemLayout
	status   string
	expanded bool

	// Document meta data, only persisted for files
	charCount int
	wordCount int
	paraCount int
	cursorPos int

	vocab  Vocabulary
	logger *logrus.Entry
}

// NewItem creates an empty item. A nil logger falls back to a default one.
func NewItem(vocab Vocabulary, logger *logrus.Entry) *Item {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Item{
		itemType: models.TypeNone,
		class:    models.ClassNone,
		layout:   models.LayoutNone,
		vocab:    vocab,
		logger:   logger,
	}
}

func (it *Item) Name() string { return it.name }
func (it *Item) Handle() string { return it.handle }
func (it *Item) Parent() string { return it.parent }
func (it *Item) Order() int { return it.order }
func (it *Item) Type() models.ItemType { return it.itemType }
func (it *Item) Class() models.ItemClass { return it.class }
func (it *Item) Layout() models.ItemLayout { return it.layout }
func (it *Item) Status() string { return it.status }
func (it *Item) Expanded() bool { return it.expanded }
func (it *Item) CharCount() int { return it.charCount }
func (it *Item) WordCount() int { return it.wordCount }
func (it *Item) ParaCount() int { return it.paraCount }
func (it *Item) CursorPos() int { return it.cursorPos }
func (it *Item) HasParent() bool { return it.parent != "" }
func (it *Item) IsFile() bool { return it.itemType == models.TypeFile }

func (it *Item) SetName(name string) {
	it.name = strings.TrimSpace(name)
}

// SetHandle is used by the project tree when the item is linked in.
func (it *Item) SetHandle(handle string) {
	it.handle = handle
}

// SetParent sets the parent handle. An empty string marks a top-level item.
func (it *Item) SetParent(parent string) {
	it.parent = parent
}

func (it *Item) SetOrder(order int) {
	it.order = order
}

func (it *Item) SetType(t models.ItemType) {
	if !t.Valid() {
		it.logger.WithField("type", int(t)).Error("Unrecognised item type")
		t = models.TypeNone
	}
	it.itemType = t
}

func (it *Item) SetClass(c models.ItemClass) {
	if !c.Valid() {
		it.logger.WithField("class", int(c)).Error("Unrecognised item class")
		c = models.ClassNone
	}
	it.class = c
}

func (it *Item) SetLayout(l models.ItemLayout) {
	if !l.Valid() {
		it.logger.WithField("layout", int(l)).Error("Unrecognised item layout")
		l = models.LayoutNone
	}
	it.layout = l
}

// SetStatus resolves the label against the vocabulary matching the item's
// current class, so the class must be set first.
func (it *Item) SetStatus(label string) {
	checker := it.vocab.Other
	if it.class == models.ClassNovel {
		checker = it.vocab.Novel
	}
	if checker == nil {
		it.status = strings.TrimSpace(label)
		return
	}
	it.status = checker.CheckEntry(label)
}

func (it *Item) SetExpanded(expanded bool) {
	it.expanded = expanded
}

func (it *Item) SetCharCount(n int) { it.charCount = nonNegative(n) }
func (it *Item) SetWordCount(n int) { it.wordCount = nonNegative(n) }
func (it *Item) SetParaCount(n int) { it.paraCount = nonNegative(n) }
func (it *Item) SetCursorPos(n int) { it.cursorPos = nonNegative(n) }

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Pack appends an <item> element describing the item to parent.
func (it *Item) Pack(parent *etree.Element) *etree.Element {
	el := parent.CreateElement("item")
	el.CreateAttr("handle", it.handle)
	el.CreateAttr("order", strconv.Itoa(it.order))
	if it.parent != "" {
		el.CreateAttr("parent", it.parent)
	}

	subPack(el, FieldName, it.name, true)
	subPack(el, FieldType, it.itemType.String(), true)
	subPack(el, FieldClass, it.class.String(), true)
	subPack(el, FieldStatus, it.status, true)
	subPack(el, FieldExpanded, formatBool(it.expanded), true)
	if it.IsFile() {
		subPack(el, FieldLayout, it.layout.String(), true)
		subPack(el, FieldCharCount, strconv.Itoa(it.charCount), false)
		subPack(el, FieldWordCount, strconv.Itoa(it.wordCount), false)
		subPack(el, FieldParaCount, strconv.Itoa(it.paraCount), false)
		subPack(el, FieldCursorPos, strconv.Itoa(it.cursorPos), false)
	}
	return el
}

// subPack writes a child element. When keepNone is false the historical
// "None" placeholder is dropped instead of being written literally.
func subPack(parent *etree.Element, f Field, text string, keepNone bool) *etree.Element {
	if !keepNone && text == "None" {
		return nil
	}
	el := parent.CreateElement(f.String())
	el.SetText(text)
	return el
}

// Project files written by older versions use "True"/"False".
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
