package card

import (
	"sort"
	"strings"
)

// Grade compares a learner's submitted answer against the decoded
// answer key and returns a single verdict. The answer is always an
// ordered list of strings: only the first element matters for basic
// and single_choice; every element matters for multiple_choice
// (order-insensitive) and fill_in_blank (blank order).
//
// Grading is pure and total. Malformed or structurally inconsistent
// input (wrong slot/blank counts, unrecognized kind, unusable choice
// codes) grades as false; callers that must distinguish "no answer"
// from "wrong answer" have to do so before calling Grade.
func Grade(front FrontSchema, back BackSchema, answer []string) bool {
	switch front.Kind {
	case KindBasic:
		return gradeBasic(back, answer)
	case KindSingleChoice:
		return gradeSingleChoice(back, answer)
	case KindMultipleChoice:
		return gradeMultipleChoice(back, answer)
	case KindFillInBlank:
		return gradeFillInBlank(front, back, answer)
	}
	return false
}

func gradeBasic(back BackSchema, answer []string) bool {
	if len(back.Slots) == 0 {
		return false
	}
	user := normalizeText(first(answer))
	for _, cand := range back.Slots[0] {
		if user == normalizeText(cand) {
			return true
		}
	}
	return false
}

func gradeSingleChoice(back BackSchema, answer []string) bool {
	user, ok := NormalizeChoiceCode(first(answer))
	if !ok {
		return false
	}
	if len(back.Slots) == 0 {
		return false
	}
	for _, cand := range back.Slots[0] {
		if code, ok := NormalizeChoiceCode(cand); ok && code == user {
			return true
		}
	}
	return false
}

func gradeMultipleChoice(back BackSchema, answer []string) bool {
	user := make([]string, 0, len(answer))
	for _, a := range answer {
		code, ok := NormalizeChoiceCode(a)
		if !ok {
			return false
		}
		user = append(user, code)
	}

	// Flatten every slot; unusable legacy candidates are filtered out
	// rather than surfaced.
	var correct []string
	for _, slot := range back.Slots {
		for _, cand := range slot {
			if code, ok := NormalizeChoiceCode(cand); ok {
				correct = append(correct, code)
			}
		}
	}
	if len(correct) == 0 || len(user) != len(correct) {
		return false
	}

	// Sorted positional comparison, not true set equality: duplicate
	// letters on either side keep their historical behavior.
	sort.Strings(user)
	sort.Strings(correct)
	for i := range user {
		if user[i] != correct[i] {
			return false
		}
	}
	return true
}

func gradeFillInBlank(front FrontSchema, back BackSchema, answer []string) bool {
	blanks := CountBlanks(front.Prompt)

	slots := back.Slots
	// Legacy single-row authoring of multiple blanks: one slot whose
	// candidates are really one answer per blank. Only this exact
	// shape is reinterpreted.
	if blanks > 1 && len(slots) == 1 {
		exploded := make([][]string, 0, len(slots[0]))
		for _, cand := range slots[0] {
			exploded = append(exploded, []string{cand})
		}
		slots = exploded
	}
	if len(slots) != blanks || len(answer) != blanks {
		return false
	}

	for i, slot := range slots {
		user := normalizeText(answer[i])
		matched := false
		for _, cand := range slot {
			if user == normalizeText(cand) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// first returns the first element of the answer list, or "" when the
// list is empty.
func first(answer []string) string {
	if len(answer) == 0 {
		return ""
	}
	return answer[0]
}
