// Package thread reconciles the two views of an HN discussion, the
// hierarchical comment tree from the API and the flat rendering of visible
// comments scraped from the item page, into one ordered, scored,
// path-addressed comment list.
//
// The package is pure: it performs no I/O and holds no state across calls.
// Collaborators in internal/api and internal/scrape produce its inputs.
package thread

// Kind distinguishes the synthetic story root from comment nodes.
type Kind int

const (
	KindStory Kind = iota
	KindComment
)

// Node is one node of the API comment tree. Exactly one KindStory node
// exists per tree, at the root; story nodes never appear among descendants.
type Node struct {
	ID       int
	Kind     Kind
	Author   string
	Children []*Node
}

// DomRecord is what the page scrape knows about one visible comment:
// where it was rendered, its tag-stripped text, and how faded it was.
// A comment with no DomRecord was flagged, collapsed, or hidden under a
// collapsed ancestor.
type DomRecord struct {
	// Position is the 0-based render order on the page, unique across the
	// scrape result.
	Position int
	Text     string
	// Downvotes is the palette-derived downvote level, 0..9.
	Downvotes int
}

// FlatComment is one reconciled comment. Merge creates these; AssignPaths
// and ScoreAll fill Path and Score in place.
type FlatComment struct {
	ID     int
	Author string
	// ParentID is the id of the parent comment, or the story root's id for
	// top-level comments.
	ParentID  int
	Position  int
	Text      string
	Downvotes int
	// Replies counts immediate children in the API tree, whether or not
	// they survived the merge.
	Replies int
	Path    string
	Score   int
}
