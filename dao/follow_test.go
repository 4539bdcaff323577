package dao

import (
	"Tuiter/internal/testkit"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowDAO(t *testing.T) {
	ctx := context.Background()
	db := testkit.NewDB(t)
	_, _, follows, _ := newDAOs(db)

	alice := testkit.User(t, db, "alice")
	bob := testkit.User(t, db, "bob")
	carol := testkit.User(t, db, "carol")

	for _, e := range [][2]int64{{alice.ID, bob.ID}, {carol.ID, bob.ID}, {bob.ID, alice.ID}} {
		created, err := follows.Add(ctx, e[0], e[1])
		require.NoError(t, err)
		assert.True(t, created)
	}
	created, err := follows.Add(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	ok, err := follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = follows.IsFollowing(ctx, bob.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	followers, err := follows.FindFollowers(ctx, bob.ID, ExpandFollower)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.ElementsMatch(t,
		[]string{"alice", "carol"},
		[]string{followers[0].Follower.Username, followers[1].Follower.Username})
	assert.Nil(t, followers[0].Followee)

	followees, err := follows.FindFollowees(ctx, bob.ID, ExpandFollowee|ExpandFollower)
	require.NoError(t, err)
	require.Len(t, followees, 1)
	assert.Equal(t, "alice", followees[0].Followee.Username)
	assert.Equal(t, "bob", followees[0].Follower.Username)

	n, err := follows.DeleteFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	n, err = follows.DeleteFollowees(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	left, err := follows.Count(ctx, Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, left)
}
