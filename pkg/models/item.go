package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ItemType is the structural role of a node in the project tree.
type ItemType int

const (
	TypeNone ItemType = iota
	TypeRoot
	TypeFolder
	TypeFile
	TypeTrash
)

var itemTypeNames = map[ItemType]string{
	TypeNone:   "NO_TYPE",
	TypeRoot:   "ROOT",
	TypeFolder: "FOLDER",
	TypeFile:   "FILE",
	TypeTrash:  "TRASH",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return itemTypeNames[TypeNone]
}

// Valid reports whether t is one of the declared item types.
func (t ItemType) Valid() bool {
	_, ok := itemTypeNames[t]
	return ok
}

// ParseItemType converts a persisted name such as "FOLDER" into an ItemType.
// It returns TypeNone and false when the name is not recognised.
func ParseItemType(s string) (ItemType, bool) {
	for t, name := range itemTypeNames {
		if name == s {
			return t, true
		}
	}
	return TypeNone, false
}

// ItemClass is the category an item belongs to (novel, characters, ...).
type ItemClass int

const (
	ClassNone ItemClass = iota
	ClassNovel
	ClassPlot
	ClassCharacter
	ClassWorld
	ClassTimeline
	ClassObject
	ClassEntity
	ClassCustom
	ClassTrash
)

var itemClassNames = map[ItemClass]string{
	ClassNone:      "NO_CLASS",
	ClassNovel:     "NOVEL",
	ClassPlot:      "PLOT",
	ClassCharacter: "CHARACTER",
	ClassWorld:     "WORLD",
	ClassTimeline:  "TIMELINE",
	ClassObject:    "OBJECT",
	ClassEntity:    "ENTITY",
	ClassCustom:    "CUSTOM",
	ClassTrash:     "TRASH",
}

func (c ItemClass) String() string {
	if name, ok := itemClassNames[c]; ok {
		return name
	}
	return itemClassNames[ClassNone]
}

func (c ItemClass) Valid() bool {
	_, ok := itemClassNames[c]
	return ok
}

// ParseItemClass returns ClassNone and false for unknown names.
func ParseItemClass(s string) (ItemClass, bool) {
	for c, name := range itemClassNames {
		if name == s {
			return c, true
		}
	}
	return ClassNone, false
}

// ItemLayout describes how a FILE item is formatted.
type ItemLayout int

const (
	LayoutNone ItemLayout = iota
	LayoutTitle
	LayoutBook
	LayoutPage
	LayoutPartition
	LayoutUnnumbered
	LayoutChapter
	LayoutScene
	LayoutNote
)

var itemLayoutNames = map[ItemLayout]string{
	LayoutNone:       "NO_LAYOUT",
	LayoutTitle:      "TITLE",
	LayoutBook:       "BOOK",
	LayoutPage:       "PAGE",
	LayoutPartition:  "PARTITION",
	LayoutUnnumbered: "UNNUMBERED",
	LayoutChapter:    "CHAPTER",
	LayoutScene:      "SCENE",
	LayoutNote:       "NOTE",
}

func (l ItemLayout) String() string {
	if name, ok := itemLayoutNames[l]; ok {
		return name
	}
	return itemLayoutNames[LayoutNone]
}

func (l ItemLayout) Valid() bool {
	_, ok := itemLayoutNames[l]
	return ok
}

// ParseItemLayout returns LayoutNone and false for unknown names.
func ParseItemLayout(s string) (ItemLayout, bool) {
	for l, name := range itemLayoutNames {
		if name == s {
			return l, true
		}
	}
	return LayoutNone, false
}

// Label turns a persisted enum name like "NO_CLASS" into "No Class" for display.
func Label(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		words[i] = cases.Title(language.English).String(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}
