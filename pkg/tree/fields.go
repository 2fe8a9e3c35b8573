package tree

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-novel/pkg/models"
)

// Field enumerates the item properties that can be set from a persisted record.
type Field int

const (
	FieldUnknown Field = iota
	FieldName
	FieldOrder
	FieldType
	FieldClass
	FieldLayout
	FieldStatus
	FieldExpanded
	FieldCharCount
	FieldWordCount
	FieldParaCount
	FieldCursorPos
)

var fieldTags = [...]string{
	FieldUnknown:   "",
	FieldName:      "name",
	FieldOrder:     "order",
	FieldType:      "type",
	FieldClass:     "class",
	FieldLayout:    "layout",
	FieldStatus:    "status",
	FieldExpanded:  "expanded",
	FieldCharCount: "charCount",
	FieldWordCount: "wordCount",
	FieldParaCount: "paraCount",
	FieldCursorPos: "cursorPos",
}

// String returns the XML tag of the field.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldTags) {
		return ""
	}
	return fieldTags[f]
}

// ParseField maps an XML tag to its Field.
func ParseField(tag string) (Field, bool) {
	for f, name := range fieldTags {
		if name != "" && name == tag {
			return Field(f), true
		}
	}
	return FieldUnknown, false
}

// SetFromTag sets a value from its XML tag name rather than calling the
// setter directly. Unknown tags are logged and ignored.
func (it *Item) SetFromTag(tag, value string) {
	f, ok := ParseField(tag)
	if !ok {
		it.logger.WithField("tag", tag).Error("Unknown tag")
		return
	}
	it.SetField(f, value)
}

// SetField converts the textual value for f and applies it. Unrecognised
// enum names fall back to their NO_* sentinel, bad integers to 0.
func (it *Item) SetField(f Field, value string) {
	it.logger.WithFields(logrus.Fields{"field": f.String(), "value": value}).Debug("Setting item field")

	switch f {
	case FieldName:
		it.SetName(value)
	case FieldOrder:
		it.SetOrder(parseInt(value))
	case FieldType:
		t, ok := models.ParseItemType(value)
		if !ok {
			it.logger.WithField("type", value).Error("Unrecognised item type")
		}
		it.itemType = t
	case FieldClass:
		c, ok := models.ParseItemClass(value)
		if !ok {
			it.logger.WithField("class", value).Error("Unrecognised item class")
		}
		it.class = c
	case FieldLayout:
		l, ok := models.ParseItemLayout(value)
		if !ok {
			it.logger.WithField("layout", value).Error("Unrecognised item layout")
		}
		it.layout = l
	case FieldStatus:
		it.SetStatus(value)
	case FieldExpanded:
		it.SetExpanded(parseBool(value))
	case FieldCharCount:
		it.SetCharCount(parseInt(value))
	case FieldWordCount:
		it.SetWordCount(parseInt(value))
	case FieldParaCount:
		it.SetParaCount(parseInt(value))
	case FieldCursorPos:
		it.SetCursorPos(parseInt(value))
	default:
		it.logger.WithField("field", int(f)).Error("Unknown field")
	}
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}
