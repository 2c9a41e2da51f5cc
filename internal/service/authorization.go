// File: internal/service/authorization.go
package service

import "blog/internal/model"

// Decision 是權限檢查的結果
type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Err 將非 Allowed 的結果轉為對應的哨兵錯誤
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case Unauthenticated:
		return ErrUnauthenticated
	default:
		return ErrForbidden
	}
}

// AuthorizeUser 只要求已登入
func AuthorizeUser(u *model.User) Decision {
	if u == nil {
		return Unauthenticated
	}
	return Allowed
}

// AuthorizeAdmin 要求已登入且角色為 admin
func AuthorizeAdmin(u *model.User) Decision {
	if u == nil {
		return Unauthenticated
	}
	if !u.IsAdmin() {
		return Forbidden
	}
	return Allowed
}
