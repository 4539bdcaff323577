package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 引用的用户/推文/关系记录不存在
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey 插入违反唯一约束
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidOperation 调用方前置条件不满足，例如关注自己
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrStoreUnavailable 存储连接/传输失败，可重试
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrCounterSyncFailed 关系写入成功但计数重算失败
	ErrCounterSyncFailed = errors.New("counter sync failed")
)

// CounterSyncError reports that the stats of TuitID may be stale.
// The relationship mutation that preceded it has been applied.
type CounterSyncError struct {
	TuitID int64
	Err    error
}

func (e *CounterSyncError) Error() string {
	return fmt.Sprintf("counter sync failed for tuit %d: %v", e.TuitID, e.Err)
}

func (e *CounterSyncError) Unwrap() error {
	return e.Err
}

func (e *CounterSyncError) Is(target error) bool {
	return target == ErrCounterSyncFailed
}

func NewCounterSyncError(tuitID int64, err error) *CounterSyncError {
	return &CounterSyncError{TuitID: tuitID, Err: err}
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// IsRetryable 调用方可以安全重试的错误
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrCounterSyncFailed)
}
