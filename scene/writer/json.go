package writer

import (
	"fmt"
	"strings"

	"github.com/achilleasa/scenedesc/scene"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var pathEscaper = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `!`, `\!`, `:`, `\:`,
)

var prettyOptions = &pretty.Options{Width: 80, Indent: "    "}

// Escape an entity name for use as an sjson path component.
func escapePath(name string) string {
	return pathEscaper.Replace(name)
}

// WriteJSON encodes a scene as an indented JSON document.
func WriteJSON(sc *scene.Scene) ([]byte, error) {
	doc := "{}"
	var err error

	for _, c := range scene.AllCollections {
		if doc, err = sjson.SetRaw(doc, string(c), "{}"); err != nil {
			return nil, fmt.Errorf("writer: could not encode %s: %w", c, err)
		}

		for _, name := range sc.Names(c) {
			entity, _ := sc.Resolve(name, c)
			doc, err = sjson.Set(doc, string(c)+"."+escapePath(name), entityToDoc(entity))
			if err != nil {
				return nil, fmt.Errorf("writer: could not encode %s.%s: %w", c, name, err)
			}
		}
	}

	return pretty.PrettyOptions([]byte(doc), prettyOptions), nil
}
