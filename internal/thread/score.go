package thread

import "math"

// Score computes one comment's relevance from its render position and
// downvote level. The position-based score decays linearly from 1000 for the
// first comment on the page; each downvote level then removes 10% of it,
// floored at zero. total is the size of the whole reconciled result and must
// be positive.
func Score(c *FlatComment, total int) (int, error) {
	if total <= 0 {
		return 0, preconditionf("scoring with total %d", total)
	}

	defaultScore := 1000 - c.Position*1000/total
	perVote := float64(defaultScore) / 10

	s := float64(defaultScore) - perVote*float64(c.Downvotes)
	if s < 0 {
		s = 0
	}
	return int(math.Floor(s)), nil
}

// ScoreAll fills Score for every comment in place. Callers skip the pass for
// an empty result; an empty slice here is a contract violation.
func ScoreAll(comments []*FlatComment) error {
	total := len(comments)
	if total == 0 {
		return preconditionf("scoring an empty result")
	}
	for _, c := range comments {
		s, err := Score(c, total)
		if err != nil {
			return err
		}
		c.Score = s
	}
	return nil
}
