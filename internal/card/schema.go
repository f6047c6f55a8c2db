// Package card decodes the raw front/back text of a study card into
// normalized schemas and grades a learner's answer against them.
//
// Both fields may hold either a structured JSON encoding or years-old
// free text; decoding is total (it never fails) and is re-run on every
// read. All functions are pure: no I/O, no shared state, safe to call
// concurrently.
package card

// SchemaVersion is the fixed version tag carried by every decoded front.
const SchemaVersion = 1

// Kind is the question-type tag that drives answer-key interpretation
// and grading.
type Kind string

const (
	KindBasic          Kind = "basic"
	KindSingleChoice   Kind = "single_choice"
	KindMultipleChoice Kind = "multiple_choice"
	KindFillInBlank    Kind = "fill_in_blank"
)

// recognized reports whether k is one of the four supported kinds.
func (k Kind) recognized() bool {
	switch k {
	case KindBasic, KindSingleChoice, KindMultipleChoice, KindFillInBlank:
		return true
	}
	return false
}

// Media holds optional media URLs attached to a question prompt.
type Media struct {
	Image string `json:"image,omitempty"`
	Audio string `json:"audio,omitempty"`
	Video string `json:"video,omitempty"`
}

// FrontSchema is the normalized question content of a card.
// Options is present only for choice kinds; index 0,1,2,... maps to
// letters A,B,C,... Prompt may embed blank placeholders written {{n}}.
type FrontSchema struct {
	Version int      `json:"version"`
	Kind    Kind     `json:"kind"`
	Score   float64  `json:"score"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Media   *Media   `json:"media,omitempty"`
}

// BackSchema is the normalized answer key of a card. Each slot is an
// unordered set of interchangeable acceptable candidates; empty slots
// are never present. What a slot means depends on the front's Kind:
// free text (basic), acceptable letter codes (single_choice), one slot
// per correct option (multiple_choice), or one slot per blank in
// prompt order (fill_in_blank).
type BackSchema struct {
	Slots       [][]string `json:"answers"`
	Explanation string     `json:"explanation,omitempty"`
}
