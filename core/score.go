package core

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/farmtech/memscope/core/catalog"
	"github.com/farmtech/memscope/schema"
)

// rubricAccumulator collects findings and problems as each sub-score
// discovers its evidence. It is a plain value threaded through the sub-score
// functions, so entry order is deterministic and there is no cross-call state.
type rubricAccumulator struct {
	findings []string
	problems []string
}

func (acc *rubricAccumulator) finding(format string, args ...any) {
	acc.findings = append(acc.findings, fmt.Sprintf(format, args...))
}

func (acc *rubricAccumulator) problem(format string, args ...any) {
	acc.problems = append(acc.problems, fmt.Sprintf(format, args...))
}

// Score evaluates one analysis against the weighted optimization rubric and
// returns a bounded 0-100 report. The five sub-scores are computed
// independently; the total is their exact unweighted sum, and the per-component
// caps already enforce the ceiling.
func Score(analysis schema.Analysis, corpus string) schema.ScoreReport {
	acc := &rubricAccumulator{}

	var sub schema.SubScores
	sub.Types = typeScore(analysis, corpus, acc)
	sub.Strings = stringScore(analysis, acc)
	sub.Structures = structureScore(analysis, acc)
	sub.Buffers = bufferScore(analysis, acc)
	sub.Comments = commentScore(corpus, acc)

	total := sub.Sum()

	return schema.ScoreReport{
		GeneratedAt: time.Now(),
		Analysis:    analysis,
		Score:       total,
		MaxScore:    schema.MaxScore,
		Grade:       schema.GradeFor(total),
		SubScores:   sub,
		Findings:    acc.findings,
		Problems:    acc.problems,
	}
}

// typeScore rewards fixed-width integer declarations over default-width ones.
// Zero when no fixed-width types are present at all.
func typeScore(a schema.Analysis, corpus string, acc *rubricAccumulator) float64 {
	var optimized int
	for _, tag := range catalog.OptimizedDeclTags {
		n := a.TypeCounts[tag]
		optimized += n
		if n > 0 {
			acc.finding("Fixed-width %s in use (%d variables)", tag, n)
		}
	}

	var wide int
	for _, tag := range catalog.WideDeclTags {
		n := a.TypeCounts[tag]
		wide += n
		if n > 0 {
			acc.problem("Default-width %s in use (%d variables), a narrower type may fit", tag, n)
		}
	}
	if n := len(catalog.LongDecl.FindAllString(corpus, -1)); n > 0 {
		wide += n
		acc.problem("Default-width long in use (%d variables), a narrower type may fit", n)
	}

	if optimized == 0 {
		return 0
	}
	score := schema.TypeScoreMax * float64(optimized) / float64(optimized+wide)
	return math.Min(schema.TypeScoreMax, score)
}

// stringScore rewards flash-wrapped and pointer strings over heap-backed
// String objects. The +1 in the denominator guards the zero case and keeps
// the attainable fraction just below one.
func stringScore(a schema.Analysis, acc *rubricAccumulator) float64 {
	if a.Strings.FlashWrapped > 0 {
		acc.finding("F() macro in use (%d occurrences)", a.Strings.FlashWrapped)
	}
	if a.Strings.PointerStrings > 0 {
		acc.finding("const char* strings in use (%d variables)", a.Strings.PointerStrings)
	}
	if a.Strings.Growable > 0 {
		acc.problem("String objects in use (%d variables), consider const char*", a.Strings.Growable)
	}
	if a.Strings.Concatenations > 0 {
		acc.problem("String concatenation found (%d occurrences), use printf-style formatting", a.Strings.Concatenations)
	}

	optimized := a.Strings.FlashWrapped + a.Strings.PointerStrings
	unoptimized := a.Strings.Growable + a.Strings.Concatenations
	if optimized == 0 {
		return 0
	}
	score := schema.StringScoreMax * float64(optimized) / float64(optimized+unoptimized+1)
	return math.Min(schema.StringScoreMax, score)
}

// structureScore awards up to the cap per structure for the share of narrow
// fields, then averages over all structures with fields. Zero when no
// structures are present.
func structureScore(a schema.Analysis, acc *rubricAccumulator) float64 {
	if len(a.Structures) == 0 {
		return 0
	}

	names := make([]string, 0, len(a.Structures))
	for name := range a.Structures {
		names = append(names, name)
	}
	sort.Strings(names)

	var total float64
	var scored int
	for _, name := range names {
		s := a.Structures[name]
		if len(s.Fields) == 0 {
			continue
		}
		var narrow int
		for _, f := range s.Fields {
			if catalog.IsNarrowField(f.Type) {
				narrow++
			}
		}
		total += schema.StructureScoreMax * float64(narrow) / float64(len(s.Fields))
		scored++
		if narrow > 0 {
			acc.finding("Struct %s: %d/%d fields narrow", name, narrow, len(s.Fields))
		}
	}

	if scored == 0 {
		return 0
	}
	return total / float64(scored)
}

// bufferScore tiers on the smallest declared buffer capacity. Zero when no
// buffers are declared.
func bufferScore(a schema.Analysis, acc *rubricAccumulator) float64 {
	smallest, ok := a.SmallestBuffer()
	if !ok {
		return 0
	}

	switch {
	case smallest <= schema.SmallBufferTier:
		acc.finding("Serialization buffer trimmed to %d bytes", smallest)
		return schema.BufferScoreMax
	case smallest <= schema.MediumBufferTier:
		acc.problem("Smallest serialization buffer is %d bytes, could shrink further", smallest)
		return 10
	default:
		acc.problem("Smallest serialization buffer is %d bytes, could shrink further", smallest)
		return 5
	}
}

// commentScore tiers on the count of optimization-related comment lines.
func commentScore(corpus string, acc *rubricAccumulator) float64 {
	n := countOptimizationComments(corpus)
	if n > 0 {
		acc.finding("Optimization comments present (%d lines)", n)
	} else {
		acc.problem("missing explanatory comments")
	}

	switch {
	case n >= schema.HighCommentTier:
		return schema.CommentScoreMax
	case n >= schema.MidCommentTier:
		return 10
	case n >= 1:
		return 5
	default:
		return 0
	}
}
