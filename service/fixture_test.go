package service

import (
	"Tuiter/config"
	"Tuiter/dao"
	"Tuiter/dao/cache"
	"Tuiter/internal/testkit"
	"context"
	"sync"
	"testing"

	"gorm.io/gorm"
)

type repairCall struct {
	TuitID int64
	Reason string
}

type recordingRepair struct {
	mu    sync.Mutex
	calls []repairCall
}

func (r *recordingRepair) PublishRepair(_ context.Context, tuitID int64, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, repairCall{TuitID: tuitID, Reason: reason})
	return nil
}

func (r *recordingRepair) Calls() []repairCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]repairCall(nil), r.calls...)
}

type fixture struct {
	db        *gorm.DB
	repair    *recordingRepair
	tuitDAO   *dao.TuitDAO
	counter   *CounterService
	likes     *LikeService
	follows   *FollowService
	bookmarks *BookmarkService
	accounts  *AccountService
	users     *UserService
	tuits     *TuitService
}

func newFixture(t testing.TB, statsCache *cache.StatsCache) *fixture {
	t.Helper()

	db := testkit.NewDB(t)
	app := &config.App{RecomputeWorkers: 4}
	users := dao.NewUsers(db)
	tuitDAO := dao.NewTuitDAO(db)
	joiner := dao.NewJoiner(users, tuitDAO)
	refs := &Refs{Users: users, Tuits: tuitDAO}
	repair := &recordingRepair{}

	counter := &CounterService{App: app, TuitDAO: tuitDAO, Cache: statsCache, Repair: repair}
	likes := &LikeService{
		App:        app,
		LikeDAO:    dao.NewLikeDAO(db, joiner),
		DislikeDAO: dao.NewDislikeDAO(db, joiner),
		Refs:       refs,
		Counter:    counter,
	}
	follows := &FollowService{FollowDAO: dao.NewFollowDAO(db, joiner), Refs: refs}
	bookmarks := &BookmarkService{BookmarkDAO: dao.NewBookmarkDAO(db, joiner), Refs: refs}

	return &fixture{
		db:        db,
		repair:    repair,
		tuitDAO:   tuitDAO,
		counter:   counter,
		likes:     likes,
		follows:   follows,
		bookmarks: bookmarks,
		accounts: &AccountService{
			Follows:   follows,
			Bookmarks: bookmarks,
			Likes:     likes,
			TuitDAO:   tuitDAO,
			Cache:     statsCache,
		},
		users: &UserService{Users: users},
		tuits: &TuitService{TuitDAO: tuitDAO, Joiner: joiner, Refs: refs},
	}
}
