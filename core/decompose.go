package core

import (
	"strings"

	"github.com/farmtech/memscope/core/catalog"
	"github.com/farmtech/memscope/schema"
)

// DecomposeStruct splits a composite-type block body into fields and sums
// their sizes. Lines that carry no statement terminator, start with the
// line-comment marker, or do not match the field shape contribute nothing.
// When a line holds several terminators only the first field-shaped match is
// taken: multiple declarations per line are not supported.
func DecomposeStruct(name, body string) schema.Structure {
	s := schema.Structure{Name: name}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, ";") || strings.HasPrefix(line, catalog.LineComment) {
			continue
		}
		m := catalog.FieldLine.FindStringSubmatch(line)
		if m == nil {
			continue // not field-shaped, skipped silently
		}
		field := schema.Field{
			Type: strings.TrimSpace(m[1]),
			Name: m[2],
		}
		s.Fields = append(s.Fields, field)
		s.SizeBytes += catalog.FieldSize(field.Type)
	}

	return s
}
