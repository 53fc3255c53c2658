// Package render turns HN comment HTML into plain text and reconciled
// comments into the one-line-per-comment form consumed by summarizers.
package render

import (
	"fmt"
	"strings"

	"hnrecap/internal/thread"
)

// Comment renders one reconciled comment as a single line:
//
//	[2.1] (score: 167) <replies: 0> {downvotes: 5} author: text
func Comment(c *thread.FlatComment) string {
	return fmt.Sprintf("[%s] (score: %d) <replies: %d> {downvotes: %d} %s: %s",
		c.Path, c.Score, c.Replies, c.Downvotes, c.Author, c.Text)
}

// Thread renders the whole reconciled list in output order, one comment per
// line.
func Thread(comments []*thread.FlatComment) string {
	var sb strings.Builder
	for _, c := range comments {
		sb.WriteString(Comment(c))
		sb.WriteString("\n")
	}
	return sb.String()
}
