package parser

import (
	"strings"

	"dtp/internal/domain"
)

const (
	prompt       = ">>>"
	continuation = "..."
)

// ExtractBlocks parses the interactive example blocks out of one piece of
// documentation text. A line beginning with ">>> " starts a new block,
// "... " lines extend its source, and the following non-blank lines are
// the expected output. A blank line or the next prompt ends the block.
func ExtractBlocks(doc DocText) []domain.ExampleBlock {
	lines := strings.Split(doc.Text, "\n")

	var blocks []domain.ExampleBlock
	var cur *domain.ExampleBlock
	var want []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Want = strings.Join(want, "\n")
		blocks = append(blocks, *cur)
		cur = nil
		want = nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, prompt):
			flush()
			cur = &domain.ExampleBlock{
				File:   doc.File,
				Line:   doc.Line + i,
				Source: []string{strings.TrimSpace(strings.TrimPrefix(line, prompt))},
			}
		case cur != nil && len(want) == 0 && isContinuation(line):
			cur.Source = append(cur.Source, strings.TrimSpace(strings.TrimPrefix(line, continuation)))
		case line == "":
			flush()
		default:
			if cur != nil {
				want = append(want, line)
			}
		}
	}
	flush()

	return blocks
}

// isContinuation reports whether a line extends the current source block.
// "...text" without a separating space is expected output containing the
// ellipsis wildcard, not source.
func isContinuation(line string) bool {
	return line == continuation || strings.HasPrefix(line, continuation+" ")
}
