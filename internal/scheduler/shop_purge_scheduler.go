package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/asiburrahmanprince/ecommerce/internal/app/service"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
)

// Shops switched to status deleted are kept for a grace period so the
// change can be undone, then purged for good.
const purgeGracePeriod = 24 * time.Hour

// ShopPurgeScheduler hard-removes shops that have sat in status deleted
// past the grace period.
type ShopPurgeScheduler struct {
	cron        *cron.Cron
	shopService service.ShopService
}

func NewShopPurgeScheduler(shopService service.ShopService) *ShopPurgeScheduler {
	return &ShopPurgeScheduler{
		cron:        cron.New(),
		shopService: shopService,
	}
}

// Start registers the nightly purge at 03:00 and runs the cron loop.
func (s *ShopPurgeScheduler) Start() error {
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		logger.Info("Starting scheduled shop purge", nil)

		purged, err := s.shopService.PurgeStaleDeleted(time.Now().Add(-purgeGracePeriod))
		if err != nil {
			logger.Error("Failed to purge stale deleted shops", err)
			return
		}

		logger.Info("Scheduled shop purge finished", map[string]interface{}{
			"purged": purged,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for shop purge", err)
		return err
	}

	s.cron.Start()
	logger.Info("Shop purge scheduler started successfully (daily at 3:00 AM)", nil)

	return nil
}

// Stop stops the scheduler
func (s *ShopPurgeScheduler) Stop() {
	logger.Info("Stopping shop purge scheduler...", nil)
	s.cron.Stop()
	logger.Info("Shop purge scheduler stopped", nil)
}
