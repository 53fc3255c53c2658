package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flat builds an already-merged, position-sorted comment for path tests.
func flat(id, parentID, position int) *FlatComment {
	return &FlatComment{ID: id, ParentID: parentID, Position: position}
}

func TestAssignPaths_TopLevelSequence(t *testing.T) {
	comments := []*FlatComment{
		flat(10, 1, 0),
		flat(20, 1, 1),
		flat(30, 1, 2),
	}

	require.NoError(t, AssignPaths(comments, 1))
	assert.Equal(t, "1", comments[0].Path)
	assert.Equal(t, "2", comments[1].Path)
	assert.Equal(t, "3", comments[2].Path)
}

func TestAssignPaths_ChildRanks(t *testing.T) {
	// Two top-level comments; the second has three replies, one of which
	// itself has a reply.
	comments := []*FlatComment{
		flat(10, 1, 0),
		flat(20, 1, 1),
		flat(21, 20, 2),
		flat(22, 20, 3),
		flat(221, 22, 4),
		flat(23, 20, 5),
	}

	require.NoError(t, AssignPaths(comments, 1))
	assert.Equal(t, "1", comments[0].Path)
	assert.Equal(t, "2", comments[1].Path)
	assert.Equal(t, "2.1", comments[2].Path)
	assert.Equal(t, "2.2", comments[3].Path)
	assert.Equal(t, "2.2.1", comments[4].Path)
	assert.Equal(t, "2.3", comments[5].Path)
}

func TestAssignPaths_SiblingsRankedByPosition(t *testing.T) {
	// Sibling rank follows render order even when ids don't.
	comments := []*FlatComment{
		flat(10, 1, 0),
		flat(99, 10, 1),
		flat(12, 10, 2),
	}

	require.NoError(t, AssignPaths(comments, 1))
	assert.Equal(t, "1.1", comments[1].Path)
	assert.Equal(t, "1.2", comments[2].Path)
}

func TestAssignPaths_MissingParent(t *testing.T) {
	comments := []*FlatComment{
		flat(10, 1, 0),
		flat(20, 77, 1), // 77 survived neither as root nor as a comment
	}

	err := AssignPaths(comments, 1)
	require.Error(t, err)
	var mpe *MissingParentError
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, 20, mpe.ID)
	assert.Equal(t, 77, mpe.ParentID)
}

func TestAssignPaths_ChildBeforeParent(t *testing.T) {
	// A reply rendering above its parent breaks the parent-before-child
	// invariant and must be reported, not worked around.
	comments := []*FlatComment{
		flat(21, 20, 0),
		flat(20, 1, 1),
	}

	err := AssignPaths(comments, 1)
	require.Error(t, err)
	var pe *PreconditionError
	assert.ErrorAs(t, err, &pe)
}

func TestAssignPaths_Empty(t *testing.T) {
	require.NoError(t, AssignPaths(nil, 1))
}

func TestAssignPaths_Reassigns(t *testing.T) {
	// A second invocation over the same slice produces identical paths, not
	// leftovers from the first.
	comments := []*FlatComment{
		flat(10, 1, 0),
		flat(21, 10, 1),
	}

	require.NoError(t, AssignPaths(comments, 1))
	require.NoError(t, AssignPaths(comments, 1))
	assert.Equal(t, "1", comments[0].Path)
	assert.Equal(t, "1.1", comments[1].Path)
}
