package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Purger permanently removes rows that were soft deleted longer ago than
// the retention window.
type Purger struct {
	db        *gorm.DB
	retention time.Duration
	now       func() time.Time
}

func NewPurger(db *gorm.DB, retention time.Duration) *Purger {
	return &Purger{db: db, retention: retention, now: time.Now}
}

// purgeOrder lists children before parents.
var purgeOrder = []struct {
	table string
	model any
}{
	{"clients", &models.Client{}},
	{"userPhoto", &models.UserPhoto{}},
	{"branchs", &models.Branch{}},
	{"services", &models.Service{}},
	{"user", &models.User{}},
}

// Run returns the number of rows removed per table.
func (p *Purger) Run(ctx context.Context) (map[string]int64, error) {
	cutoff := p.now().Add(-p.retention)
	counts := make(map[string]int64, len(purgeOrder)+1)

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`DELETE FROM branchs_services
			 WHERE branch_id IN (SELECT id FROM branchs WHERE deleted_at IS NOT NULL AND deleted_at < ?)
			    OR service_id IN (SELECT id FROM services WHERE deleted_at IS NOT NULL AND deleted_at < ?)`,
			cutoff, cutoff,
		)
		if res.Error != nil {
			return fmt.Errorf("purge branchs_services: %w", res.Error)
		}
		counts["branchs_services"] = res.RowsAffected

		for _, step := range purgeOrder {
			res := tx.Unscoped().
				Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
				Delete(step.model)
			if res.Error != nil {
				return fmt.Errorf("purge %s: %w", step.table, res.Error)
			}
			counts[step.table] = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Schedule runs the purge on spec until the returned cron is stopped.
// A zero retention disables purging and returns nil.
func Schedule(spec string, p *Purger) (*cron.Cron, error) {
	if p.retention <= 0 {
		slog.Info("purge job disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		counts, err := p.Run(context.Background())
		if err != nil {
			slog.Error("purge failed", "error", err)
			return
		}
		slog.Info("purge finished", "removed", counts)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule purge %q: %w", spec, err)
	}

	c.Start()
	slog.Info("purge job scheduled", "spec", spec, "retention", p.retention.String())
	return c, nil
}
