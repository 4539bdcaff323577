package service

import (
	"Tuiter/internal/testkit"
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"context"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLikeService_LikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	stats, err := f.likes.Like(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Likes)

	stats, err = f.likes.Like(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Likes)

	n, err := f.likes.CountLikes(ctx, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestLikeService_LikeAndDislikeAreExclusive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	bob := testkit.User(t, f.db, "bob")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	_, err := f.likes.Like(ctx, bob.ID, tuit.ID)
	require.NoError(t, err)

	stats, err := f.likes.Dislike(ctx, bob.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Likes)
	assert.EqualValues(t, 1, stats.Dislikes)

	liked, err := f.likes.IsLiked(ctx, bob.ID, tuit.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	stats, err = f.likes.Like(ctx, bob.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Likes)
	assert.EqualValues(t, 0, stats.Dislikes)

	disliked, err := f.likes.IsDisliked(ctx, bob.ID, tuit.ID)
	require.NoError(t, err)
	assert.False(t, disliked)
}

func TestLikeService_UnlikeWithoutRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	stats, err := f.likes.Unlike(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Likes)

	stats, err = f.likes.Undislike(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Dislikes)
}

func TestLikeService_Toggle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	liked, stats, err := f.likes.ToggleLike(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, stats.Likes)

	liked, stats, err = f.likes.ToggleLike(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, stats.Likes)

	disliked, stats, err := f.likes.ToggleDislike(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.True(t, disliked)
	assert.EqualValues(t, 1, stats.Dislikes)
}

func TestLikeService_MissingReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	_, err := f.likes.Like(ctx, alice.ID, 404)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.likes.Dislike(ctx, 404, tuit.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	n, err := f.likes.CountLikes(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLikeService_TuitDeletedBeforeInsert(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	// 存在性检查通过之后、插入点赞之前推文被删除
	var once sync.Once
	deleteTuit := func(tx *gorm.DB) {
		if tx.Statement.Table != "likes" {
			return
		}
		once.Do(func() {
			if _, err := f.accounts.DeleteTuit(ctx, tuit.ID); err != nil {
				_ = tx.AddError(err)
			}
		})
	}
	require.NoError(t, f.db.Callback().Create().Before("gorm:begin_transaction").Register("test:delete_tuit", deleteTuit))

	_, err := f.likes.Like(ctx, alice.ID, tuit.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	var orphans int64
	require.NoError(t, f.db.Model(&models.Like{}).Where("user_id = ?", alice.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	liked, err := f.likes.FindTuitsLikedByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestLikeService_TwoUsersScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	author := testkit.User(t, f.db, "author")
	a := testkit.User(t, f.db, "a")
	b := testkit.User(t, f.db, "b")
	tuit := testkit.Tuit(t, f.db, author, "hello")

	steps := []struct {
		name     string
		do       func() (*models.Stats, error)
		likes    int64
		dislikes int64
	}{
		{"a likes", func() (*models.Stats, error) { return f.likes.Like(ctx, a.ID, tuit.ID) }, 1, 0},
		{"b likes", func() (*models.Stats, error) { return f.likes.Like(ctx, b.ID, tuit.ID) }, 2, 0},
		{"a dislikes", func() (*models.Stats, error) { return f.likes.Dislike(ctx, a.ID, tuit.ID) }, 1, 1},
		{"b unlikes", func() (*models.Stats, error) { return f.likes.Unlike(ctx, b.ID, tuit.ID) }, 0, 1},
	}
	for _, step := range steps {
		stats, err := step.do()
		require.NoError(t, err, step.name)
		assert.Equal(t, step.likes, stats.Likes, step.name)
		assert.Equal(t, step.dislikes, stats.Dislikes, step.name)

		stored, err := f.tuitDAO.FindByID(ctx, tuit.ID)
		require.NoError(t, err, step.name)
		assert.Equal(t, step.likes, stored.Stats.Likes, step.name)
		assert.Equal(t, step.dislikes, stored.Stats.Dislikes, step.name)
	}

	liked, err := f.likes.IsLiked(ctx, a.ID, tuit.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	disliked, err := f.likes.IsDisliked(ctx, a.ID, tuit.ID)
	require.NoError(t, err)
	assert.True(t, disliked)
}

func TestLikeService_CountersMatchRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	author := testkit.User(t, f.db, "author")
	tuit := testkit.Tuit(t, f.db, author, "hello")

	names := []string{"u1", "u2", "u3", "u4", "u5"}
	for i, name := range names {
		u := testkit.User(t, f.db, name)
		if i%2 == 0 {
			_, err := f.likes.Like(ctx, u.ID, tuit.ID)
			require.NoError(t, err)
		} else {
			_, err := f.likes.Dislike(ctx, u.ID, tuit.ID)
			require.NoError(t, err)
		}
	}

	stored, err := f.tuitDAO.FindByID(ctx, tuit.ID)
	require.NoError(t, err)
	likes, err := f.likes.CountLikes(ctx, tuit.ID)
	require.NoError(t, err)
	dislikes, err := f.likes.CountDislikes(ctx, tuit.ID)
	require.NoError(t, err)
	assert.Equal(t, likes, stored.Stats.Likes)
	assert.Equal(t, dislikes, stored.Stats.Dislikes)
	assert.EqualValues(t, 3, likes)
	assert.EqualValues(t, 2, dislikes)
}

func TestLikeService_ConcurrentLikesFromSameUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.likes.Like(ctx, alice.ID, tuit.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := f.likes.CountLikes(ctx, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	stored, err := f.tuitDAO.FindByID(ctx, tuit.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.Stats.Likes)
}

func TestLikeService_CounterSyncFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	tuit := testkit.Tuit(t, f.db, alice, "hello")
	testkit.FailOn(t, f.db, "update", "tuits", driver.ErrBadConn)

	stats, err := f.likes.Like(ctx, alice.ID, tuit.ID)
	assert.Nil(t, stats)
	require.ErrorIs(t, err, errs.ErrCounterSyncFailed)
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

	var syncErr *errs.CounterSyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, tuit.ID, syncErr.TuitID)

	// 关系记录已写入
	liked, err := f.likes.IsLiked(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	calls := f.repair.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, tuit.ID, calls[0].TuitID)
	assert.NotEmpty(t, calls[0].Reason)
}

func TestLikeService_FindExpanded(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	alice := testkit.User(t, f.db, "alice")
	bob := testkit.User(t, f.db, "bob")
	tuit := testkit.Tuit(t, f.db, alice, "hello")

	_, err := f.likes.Like(ctx, bob.ID, tuit.ID)
	require.NoError(t, err)
	_, err = f.likes.Dislike(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)

	likers, err := f.likes.FindUsersThatLikedTuit(ctx, tuit.ID)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	require.NotNil(t, likers[0].User)
	assert.Equal(t, "bob", likers[0].User.Username)

	liked, err := f.likes.FindTuitsLikedByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	require.NotNil(t, liked[0].Tuit)
	assert.Equal(t, "hello", liked[0].Tuit.Tuit)

	dislikers, err := f.likes.FindUsersThatDislikedTuit(ctx, tuit.ID)
	require.NoError(t, err)
	require.Len(t, dislikers, 1)
	assert.Equal(t, "alice", dislikers[0].User.Username)

	disliked, err := f.likes.FindTuitsDislikedByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, disliked, 1)
	assert.Equal(t, tuit.ID, disliked[0].Tuit.ID)

	none, err := f.likes.FindTuitsLikedByUser(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, none)
}
