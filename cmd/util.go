package cmd

import (
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-novel/pkg/models"
)

func parseClass(s string) (models.ItemClass, error) {
	c, ok := models.ParseItemClass(strings.ToUpper(strings.TrimSpace(s)))
	if !ok {
		return models.ClassNone, fmt.Errorf("unknown class %q", s)
	}
	return c, nil
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
