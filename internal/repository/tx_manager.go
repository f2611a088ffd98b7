package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Sales() SaleRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// 売上確定（在庫減算＋台帳追記）は必ず同じTxで行う。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
