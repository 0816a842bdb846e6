// Package core has the analysis pipeline: scanning, structure decomposition,
// memory estimation, comparison and scoring.
package core

import (
	"strconv"
	"strings"

	"github.com/farmtech/memscope/core/catalog"
	"github.com/farmtech/memscope/schema"
)

// Scan extracts all raw catalog matches from a corpus. It is a pure function
// of the corpus text: no match means a zero count, never an error. Two scans
// of the same corpus yield identical results.
func Scan(corpus string) schema.RawMatches {
	matches := schema.RawMatches{
		TypeCounts: make(map[schema.PrimitiveType]int, len(schema.AllPrimitiveTypes)),
	}

	// Keep the counts total over the catalog so downstream consumers never
	// distinguish "absent" from "zero".
	for _, tag := range schema.AllPrimitiveTypes {
		matches.TypeCounts[tag] = 0
	}
	for _, d := range catalog.Declarations {
		matches.TypeCounts[d.Tag] += len(d.Pattern.FindAllString(corpus, -1))
	}

	for _, blk := range catalog.StructBlock.FindAllStringSubmatch(corpus, -1) {
		matches.StructBlocks = append(matches.StructBlocks, schema.StructBlock{
			Name: blk[1],
			Body: blk[2],
		})
	}

	// String idioms are counted on non-comment lines only; a commented-out
	// String declaration is not a resident string.
	active := stripCommentLines(corpus)
	matches.Strings = schema.StringUsage{
		FlashWrapped:   len(catalog.FlashString.FindAllString(active, -1)),
		Growable:       len(catalog.GrowableString.FindAllString(active, -1)),
		PointerStrings: len(catalog.PointerString.FindAllString(active, -1)),
		Concatenations: len(catalog.StringConcat.FindAllString(active, -1)),
	}

	for _, b := range catalog.JSONBuffer.FindAllStringSubmatch(corpus, -1) {
		capacity, err := strconv.Atoi(b[1])
		if err != nil {
			continue // absurdly large capacity literal, not counted
		}
		matches.Buffers = append(matches.Buffers, schema.BufferDeclaration{CapacityBytes: capacity})
	}

	matches.OptimizationComments = countOptimizationComments(corpus)

	return matches
}

// stripCommentLines removes lines whose first non-blank token is the
// line-comment marker.
func stripCommentLines(corpus string) string {
	lines := strings.Split(corpus, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), catalog.LineComment) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// countOptimizationComments counts lines whose comment portion matches at
// least one optimization keyword. A line counts once no matter how many
// keywords it mentions; trailing comments count too.
func countOptimizationComments(corpus string) int {
	count := 0
	for _, line := range strings.Split(corpus, "\n") {
		idx := strings.Index(line, catalog.LineComment)
		if idx < 0 {
			continue
		}
		comment := line[idx:]
		for _, kw := range catalog.OptimizationCommentKeywords {
			if kw.MatchString(comment) {
				count++
				break
			}
		}
	}
	return count
}
