package usecase

import "time"

// 現在時刻の注入口。テストでは固定時刻を渡す。
type Clock interface {
	Now() time.Time
}

// 売上確定のidempotency key採番用
type IDGenerator interface {
	NewID() string
}

// YYYY-MM-DD
const dateLayout = "2006-01-02"
