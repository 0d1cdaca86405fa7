package port

import "tomishop/internal/core/domain"

// Notifier surfaces the user-facing notices that cart and order
// mutations emit.
type Notifier interface {
	Notify(notice domain.Notice)
}
