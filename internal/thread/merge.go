package thread

import "sort"

// Merge walks the API tree depth-first and keeps every comment the page
// actually rendered, in a flat list ordered by render position.
//
// A node with no DomRecord is skipped along with its whole subtree. HN's
// collapse semantics already omit descendants from the page, but the walk
// does not recurse past a missing node regardless of why it is missing.
// The story root itself is never emitted; its children carry ParentID =
// root.ID.
func Merge(root *Node, dom map[int]DomRecord) ([]*FlatComment, error) {
	if root == nil {
		return nil, preconditionf("nil root")
	}
	if root.Kind != KindStory {
		return nil, preconditionf("root node %d is not a story", root.ID)
	}

	var out []*FlatComment

	var walk func(n *Node, parentID int) error
	walk = func(n *Node, parentID int) error {
		if n == nil {
			return preconditionf("nil node under parent %d", parentID)
		}
		if n.Kind == KindStory {
			return preconditionf("story node %d among comment descendants", n.ID)
		}
		if n.ID == 0 {
			return preconditionf("comment without id under parent %d", parentID)
		}

		rec, ok := dom[n.ID]
		if !ok {
			// Flagged or collapsed: drop the subtree without recursing.
			return nil
		}

		out = append(out, &FlatComment{
			ID:        n.ID,
			Author:    n.Author,
			ParentID:  parentID,
			Position:  rec.Position,
			Text:      rec.Text,
			Downvotes: rec.Downvotes,
			Replies:   len(n.Children),
		})
		for _, child := range n.Children {
			if err := walk(child, n.ID); err != nil {
				return err
			}
		}
		return nil
	}

	for _, child := range root.Children {
		if err := walk(child, root.ID); err != nil {
			return nil, err
		}
	}

	// Render order is the output contract, not an accident of traversal.
	// Positions are unique per the scrape contract; stability keeps DFS
	// emission order between any that are not.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out, nil
}

// Reconcile runs the full pipeline over one pair of inputs: merge, then
// path assignment, then scoring. Scoring is skipped entirely for an empty
// result.
func Reconcile(root *Node, dom map[int]DomRecord) ([]*FlatComment, error) {
	comments, err := Merge(root, dom)
	if err != nil {
		return nil, err
	}
	if err := AssignPaths(comments, root.ID); err != nil {
		return nil, err
	}
	if len(comments) > 0 {
		if err := ScoreAll(comments); err != nil {
			return nil, err
		}
	}
	return comments, nil
}
