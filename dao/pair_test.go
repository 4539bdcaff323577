package dao

import (
	"Tuiter/internal/testkit"
	"Tuiter/pkg/errs"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDAOs(db *gorm.DB) (*LikeDAO, *BookmarkDAO, *FollowDAO, *TuitDAO) {
	tuits := NewTuitDAO(db)
	joiner := NewJoiner(NewUsers(db), tuits)
	return NewLikeDAO(db, joiner), NewBookmarkDAO(db, joiner), NewFollowDAO(db, joiner), tuits
}

func TestPairRepo_AddRemoveHas(t *testing.T) {
	ctx := context.Background()
	db := testkit.NewDB(t)
	likes, _, _, _ := newDAOs(db)
	alice := testkit.User(t, db, "alice")
	tuit := testkit.Tuit(t, db, alice, "hello")

	created, err := likes.Add(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = likes.Add(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.False(t, created)

	has, err := likes.Has(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.True(t, has)

	n, err := likes.CountByTuit(ctx, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	removed, err := likes.Remove(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	removed, err = likes.Remove(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestPairRepo_FindExpanded(t *testing.T) {
	ctx := context.Background()
	db := testkit.NewDB(t)
	likes, _, _, _ := newDAOs(db)

	alice := testkit.User(t, db, "alice")
	bob := testkit.User(t, db, "bob")
	t1 := testkit.Tuit(t, db, alice, "first")
	t2 := testkit.Tuit(t, db, alice, "second")

	for _, p := range [][2]int64{{alice.ID, t1.ID}, {bob.ID, t1.ID}, {bob.ID, t2.ID}} {
		_, err := likes.Add(ctx, p[0], p[1])
		require.NoError(t, err)
	}

	byTuit, err := likes.FindByTuit(ctx, t1.ID, ExpandUser)
	require.NoError(t, err)
	require.Len(t, byTuit, 2)
	names := []string{byTuit[0].User.Username, byTuit[1].User.Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, names)
	assert.Nil(t, byTuit[0].Tuit)

	byUser, err := likes.FindByUser(ctx, bob.ID, ExpandTuit)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	for _, l := range byUser {
		require.NotNil(t, l.Tuit)
		require.NotNil(t, l.Tuit.Author)
		assert.Equal(t, "alice", l.Tuit.Author.Username)
		assert.Nil(t, l.User)
	}

	plain, err := likes.FindByUser(ctx, bob.ID, ExpandNone)
	require.NoError(t, err)
	assert.Nil(t, plain[0].Tuit)

	ids, err := likes.TuitIDsByUser(ctx, bob.ID, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{t1.ID, t2.ID}, ids)

	ids, err = likes.TuitIDsByUser(ctx, bob.ID, 1)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestPairRepo_DanglingReference(t *testing.T) {
	ctx := context.Background()
	db := testkit.NewDB(t)
	_, bookmarks, _, _ := newDAOs(db)

	alice := testkit.User(t, db, "alice")
	_, err := bookmarks.Add(ctx, alice.ID, 404)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// 外键启用前遗留的数据
	require.NoError(t, db.Exec("PRAGMA foreign_keys = OFF").Error)
	_, err = bookmarks.Add(ctx, alice.ID, 404)
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	_, err = bookmarks.FindByUser(ctx, alice.ID, ExpandTuit)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = bookmarks.FindByUser(ctx, alice.ID, ExpandNone)
	assert.NoError(t, err)
}

func TestPairRepo_DeleteByUserAndTuit(t *testing.T) {
	ctx := context.Background()
	db := testkit.NewDB(t)
	_, bookmarks, _, _ := newDAOs(db)
	alice := testkit.User(t, db, "alice")
	bob := testkit.User(t, db, "bob")
	t1 := testkit.Tuit(t, db, alice, "one")
	t2 := testkit.Tuit(t, db, alice, "two")

	for _, p := range [][2]int64{{alice.ID, t1.ID}, {alice.ID, t2.ID}, {bob.ID, t1.ID}} {
		_, err := bookmarks.Add(ctx, p[0], p[1])
		require.NoError(t, err)
	}

	n, err := bookmarks.DeleteByTuit(ctx, t1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = bookmarks.DeleteByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPairRepo_DeleteByUserTuits(t *testing.T) {
	ctx := context.Background()
	db := testkit.NewDB(t)
	likes, _, _, _ := newDAOs(db)
	alice := testkit.User(t, db, "alice")
	t1 := testkit.Tuit(t, db, alice, "one")
	t2 := testkit.Tuit(t, db, alice, "two")

	for _, id := range []int64{t1.ID, t2.ID} {
		_, err := likes.Add(ctx, alice.ID, id)
		require.NoError(t, err)
	}

	n, err := likes.DeleteByUserTuits(ctx, alice.ID, []int64{t1.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = likes.DeleteByUserTuits(ctx, alice.ID, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	has, err := likes.Has(ctx, alice.ID, t2.ID)
	require.NoError(t, err)
	assert.True(t, has)
}
