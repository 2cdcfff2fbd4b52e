package workers

import (
	"context"
	"time"

	"lounge_backend/internal/logger"
	"lounge_backend/internal/repositories"
)

// SubscriptionWorker периодически помечает неактивными подписки
// с истекшим сроком действия.
type SubscriptionWorker struct {
	subscriptionRepo repositories.SubscriptionRepository
	interval         time.Duration
}

func NewSubscriptionWorker(subscriptionRepo repositories.SubscriptionRepository) *SubscriptionWorker {
	return &SubscriptionWorker{
		subscriptionRepo: subscriptionRepo,
		interval:         6 * time.Hour,
	}
}

// Start запускает фоновую проверку истечения подписок
func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.expireSubscriptions(ctx)
}

func (w *SubscriptionWorker) expireSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый проход сразу при старте, дальше по тикеру
	w.runOnce()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

func (w *SubscriptionWorker) runOnce() {
	expired, err := w.subscriptionRepo.ExpireOverdue(time.Now())
	if err != nil {
		logger.Error("Error expiring subscriptions", "error", err)
		return
	}
	if expired > 0 {
		logger.Info("Marked subscriptions as expired", "count", expired)
	}
}
