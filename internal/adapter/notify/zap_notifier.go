package notify

import (
	"go.uber.org/zap"

	"tomishop/internal/core/domain"
)

// ZapNotifier writes notices to the application log. Error-level
// notices are shopper mistakes, not system failures, so they log at
// Warn.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(notice domain.Notice) {
	if notice.Level == domain.NoticeError {
		n.logger.Warn(notice.Message, zap.String("level", string(notice.Level)))
		return
	}
	n.logger.Info(notice.Message, zap.String("level", string(notice.Level)))
}
