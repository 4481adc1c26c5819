package usecase

import (
	"freelanceflow/pkg"

	"go.uber.org/zap"
)

// zlog returns the shared structured logger for ledger operations. Resolved
// per call so these packages pick up the logger built after config load
// instead of one captured at package init.
func zlog() *zap.SugaredLogger {
	return pkg.GetLogger().Sugar()
}
