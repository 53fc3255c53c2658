package thread

import "strconv"

// AssignPaths gives every comment a dotted 1-based address: "1", "2" for
// top-level comments in render order, "2.1", "2.1.3" for replies, where the
// last segment is the comment's rank among siblings sharing the same parent,
// counted in render order.
//
// The input must already be sorted by Position. A reply always renders below
// its parent, so processing in sequence order sees every parent before its
// children; that is verified rather than assumed.
func AssignPaths(comments []*FlatComment, rootID int) error {
	byID := make(map[int]*FlatComment, len(comments))
	for _, c := range comments {
		c.Path = ""
		byID[c.ID] = c
	}

	// Rank among siblings in render order collapses to a per-parent counter
	// once the sequence itself is render-ordered.
	nextChild := make(map[int]int, len(comments))
	topLevel := 0

	for _, c := range comments {
		if c.ParentID == rootID {
			topLevel++
			c.Path = strconv.Itoa(topLevel)
			continue
		}

		parent, ok := byID[c.ParentID]
		if !ok {
			return &MissingParentError{ID: c.ID, ParentID: c.ParentID}
		}
		if parent.Path == "" {
			return preconditionf("comment %d at position %d precedes its parent %d", c.ID, c.Position, c.ParentID)
		}
		nextChild[c.ParentID]++
		c.Path = parent.Path + "." + strconv.Itoa(nextChild[c.ParentID])
	}
	return nil
}
