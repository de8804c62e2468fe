package diffmatchpatch

import "bytes"

// DiffPrettyHumanized converts a []Diff into a bracketed plain-text report:
// adjacent runs of the same operation are grouped and wrapped, deletions as
// -[text] and insertions as +[text], equalities printed verbatim. Unlike
// DiffPrettyHtml and DiffPrettyText, the result needs no terminal or markup
// support, which makes it suitable for logs and commit messages.
func (config *Config) DiffPrettyHumanized(diffs []Diff) string {
	var buf bytes.Buffer
	var run Op
	var runText string
	hasRun := false

	flush := func() {
		if !hasRun {
			return
		}
		switch run {
		case OpDelete:
			_, _ = buf.WriteString("-[")
			_, _ = buf.WriteString(runText)
			_, _ = buf.WriteString("]")
		case OpInsert:
			_, _ = buf.WriteString("+[")
			_, _ = buf.WriteString(runText)
			_, _ = buf.WriteString("]")
		case OpEqual:
			_, _ = buf.WriteString(runText)
		}
		runText = ""
		hasRun = false
	}

	for _, d := range diffs {
		if hasRun && d.Op == run {
			runText += d.Text
			continue
		}
		flush()
		run = d.Op
		runText = d.Text
		hasRun = true
	}
	flush()
	return buf.String()
}
