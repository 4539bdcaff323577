package dao

import (
	"Tuiter/pkg/errs"
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// translate 把 gorm/驱动错误归一到 errs 中的分类，原始错误保留在链上
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrDuplicateKey),
		errors.Is(err, errs.ErrInvalidOperation),
		errors.Is(err, errs.ErrStoreUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", errs.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", errs.ErrDuplicateKey, err)
	case missingParent(err):
		// 引用的用户或推文已不存在
		return fmt.Errorf("%w: %w", errs.ErrNotFound, err)
	case unavailable(err):
		return fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}
	return err
}

func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// 死锁、锁等待超时都是瞬时错误
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && (myErr.Number == 1213 || myErr.Number == 1205) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func missingParent(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1452 {
		return true
	}
	var liteErr sqlite3.Error
	return errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
