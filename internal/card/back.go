package card

import "strings"

// candidate delimiters accepted on a legacy answer line: ASCII and
// fullwidth comma/semicolon.
const candidateDelims = ",，;；"

// DecodeBack turns the raw back text of a card into a BackSchema.
// Interpretations are tried in fixed priority order:
//
//  1. structured: a JSON object with a list-typed "answers" field;
//  2. no-answer: with noAnswerMode set, the trimmed non-structured
//     text becomes the explanation (authoring contexts that record
//     only a rationale);
//  3. line protocol: answer lines up to the first blank line, one slot
//     per line, candidates split on comma/semicolon; remaining lines
//     are the explanation;
//  4. degenerate fallback: a single slot holding the raw text, so the
//     worst case never discards information.
//
// Like DecodeFront it is total and never fails.
func DecodeBack(raw string, noAnswerMode bool) BackSchema {
	if bs, ok := structuredBack(raw); ok {
		return bs
	}
	if noAnswerMode {
		return BackSchema{Slots: [][]string{}, Explanation: strings.TrimSpace(raw)}
	}
	return legacyBack(raw)
}

func structuredBack(raw string) (BackSchema, bool) {
	obj, ok := parseObject(raw)
	if !ok {
		return BackSchema{}, false
	}
	list, ok := obj["answers"].([]interface{})
	if !ok {
		return BackSchema{}, false
	}
	bs := BackSchema{Slots: make([][]string, 0, len(list))}
	for _, el := range list {
		var slot []string
		switch t := el.(type) {
		case []interface{}:
			slot = make([]string, 0, len(t))
			for _, v := range t {
				if s, ok := stringify(v); ok && strings.TrimSpace(s) != "" {
					slot = append(slot, s)
				}
			}
		case string:
			if strings.TrimSpace(t) != "" {
				slot = []string{t}
			}
		}
		if len(slot) > 0 {
			bs.Slots = append(bs.Slots, slot)
		}
	}
	if s, ok := obj["explanation"].(string); ok {
		bs.Explanation = s
	}
	return bs, true
}

// legacyBack applies the line-based protocol to free text. It is
// independent of question kind.
func legacyBack(raw string) BackSchema {
	norm := strings.ReplaceAll(raw, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	lines := strings.Split(norm, "\n")

	// Strip fully-blank lines from both ends.
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return degenerateBack(raw)
	}

	// Answer lines run up to the first blank line; everything after it
	// is explanation. The separator itself is discarded.
	answerLines, explLines := lines, []string(nil)
	for i, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			answerLines = lines[:i]
			explLines = lines[i+1:]
			break
		}
	}

	slots := make([][]string, 0, len(answerLines))
	for _, ln := range answerLines {
		slot := splitCandidates(ln)
		if len(slot) > 0 {
			slots = append(slots, slot)
		}
	}
	if len(slots) == 0 {
		return degenerateBack(raw)
	}

	return BackSchema{
		Slots:       slots,
		Explanation: strings.TrimSpace(strings.Join(explLines, "\n")),
	}
}

// degenerateBack is the last-resort interpretation: the verbatim raw
// text survives as a single answer candidate.
func degenerateBack(raw string) BackSchema {
	return BackSchema{Slots: [][]string{{raw}}}
}

func splitCandidates(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(candidateDelims, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
