package service

import "errors"

var (
	// ErrUnauthenticated 无法确定调用者身份
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrStoreUnavailable 存储层（MySQL/Redis）不可用
	ErrStoreUnavailable = errors.New("store unavailable")
)
