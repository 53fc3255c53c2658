package api

import (
	"context"
	"fmt"

	"hnrecap/internal/thread"
)

// GetThread fetches a story and all its descendants, level by level, and
// builds the comment tree for reconciliation. Items that could not be
// fetched are dropped from the tree; the page scrape won't show them either.
func (c *Client) GetThread(ctx context.Context, storyID int) (*thread.Node, error) {
	story, err := c.GetItem(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("fetching story %d: %w", storyID, err)
	}
	if story == nil {
		return nil, fmt.Errorf("story %d does not exist", storyID)
	}
	if story.Type == "comment" {
		return nil, fmt.Errorf("item %d is a comment, not a story", storyID)
	}

	root := &thread.Node{
		ID:     story.ID,
		Kind:   thread.KindStory,
		Author: story.By,
	}

	// Breadth-first so each level is one concurrent batch.
	type pending struct {
		parent *thread.Node
		kid    int
	}
	frontier := make([]pending, 0, len(story.Kids))
	for _, kid := range story.Kids {
		frontier = append(frontier, pending{parent: root, kid: kid})
	}

	for len(frontier) > 0 {
		ids := make([]int, len(frontier))
		for i, p := range frontier {
			ids[i] = p.kid
		}
		items, err := c.BatchGetItems(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("fetching comments for story %d: %w", storyID, err)
		}

		var next []pending
		for i, item := range items {
			if item == nil {
				continue
			}
			node := &thread.Node{
				ID:     item.ID,
				Kind:   thread.KindComment,
				Author: item.By,
			}
			frontier[i].parent.Children = append(frontier[i].parent.Children, node)
			for _, kid := range item.Kids {
				next = append(next, pending{parent: node, kid: kid})
			}
		}
		frontier = next
	}

	return root, nil
}
