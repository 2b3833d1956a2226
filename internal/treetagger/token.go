package treetagger

import "strings"

// TaggedToken is one tab-delimited output record. TreeTagger conventionally
// emits surface form, POS tag, and lemma, but the adapter passes through
// whatever fields the binary produced.
type TaggedToken []string

// Word returns the surface form (first field), or "" for a short record.
func (t TaggedToken) Word() string { return t.field(0) }

// Tag returns the part-of-speech tag (second field), or "".
func (t TaggedToken) Tag() string { return t.field(1) }

// Lemma returns the lemma (third field), or "".
func (t TaggedToken) Lemma() string { return t.field(2) }

func (t TaggedToken) field(i int) string {
	if i < len(t) {
		return t[i]
	}
	return ""
}

// parseOutput splits decoded tagger output into records: one line per
// record after trimming a single trailing newline, fields split on tab.
// Line order is the binary's emission order; no alignment with the input
// is checked.
func parseOutput(text string) []TaggedToken {
	text = strings.TrimSuffix(text, "\r\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	records := make([]TaggedToken, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		records = append(records, TaggedToken(strings.Split(line, "\t")))
	}
	return records
}
