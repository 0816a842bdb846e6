package schema

import "time"

// Per-component caps of the scoring rubric. The caps already enforce the
// 100-point ceiling, so the total is never clamped again.
const (
	TypeScoreMax      = 25.0
	StringScoreMax    = 25.0
	StructureScoreMax = 20.0
	BufferScoreMax    = 15.0
	CommentScoreMax   = 15.0

	MaxScore = 100
)

// Buffer sub-score tiers, keyed by the smallest declared capacity.
const (
	SmallBufferTier  = 256 // <= this scores BufferScoreMax
	MediumBufferTier = 512 // <= this scores the medium award
)

// Comment sub-score tiers, keyed by optimization-related comment count.
const (
	HighCommentTier = 10 // >= this scores CommentScoreMax
	MidCommentTier  = 5
)

// SubScores holds the five bounded components of the total score.
type SubScores struct {
	Types      float64 `json:"types"`      // [0,25] narrow fixed-width type adoption
	Strings    float64 `json:"strings"`    // [0,25] flash/pointer string adoption
	Structures float64 `json:"structures"` // [0,20] narrow fields per struct, averaged
	Buffers    float64 `json:"buffers"`    // [0,15] tiered by smallest buffer capacity
	Comments   float64 `json:"comments"`   // [0,15] tiered by optimization comment count
}

// Sum returns the unweighted total of all sub-scores.
func (s SubScores) Sum() float64 {
	return s.Types + s.Strings + s.Structures + s.Buffers + s.Comments
}

// ScoreReport is the full result of scoring one analysis against the rubric.
// Findings and problems preserve the order in which each sub-score discovered
// its evidence.
type ScoreReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Analysis    Analysis  `json:"analysis"`
	Score       float64   `json:"score"` // Exact sum of the sub-scores, in [0,100]
	MaxScore    int       `json:"max_score"`
	Grade       Grade     `json:"grade"`
	SubScores   SubScores `json:"sub_scores"`
	Findings    []string  `json:"findings"`
	Problems    []string  `json:"problems"`
}
