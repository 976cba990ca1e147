package seed

import (
	"context"
	"time"

	"go.uber.org/zap"
	"scholar-seeker.backend/internal/domain/repositories"
	"scholar-seeker.backend/pkg/logger"
	"scholar-seeker.backend/pkg/metrics"
	"scholar-seeker.backend/pkg/utils"
)

// Seeder populates an empty catalog with the bundled dataset
type Seeder struct {
	scholarshipRepo repositories.ScholarshipRepository
}

// NewSeeder creates a new catalog seeder
func NewSeeder(scholarshipRepo repositories.ScholarshipRepository) *Seeder {
	return &Seeder{scholarshipRepo: scholarshipRepo}
}

// SeedIfEmpty inserts the bundled dataset only when the catalog has no rows.
// Repeated startups never overwrite or duplicate existing data. Returns the
// number of scholarships inserted.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.scholarshipRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Debug(ctx, "Catalog already seeded", zap.Int64("count", count))
		return 0, nil
	}

	scholarships := Dataset()
	now := time.Now()
	for i, sch := range scholarships {
		sch.ID = utils.GenerateUUIDv7()
		// Stagger CreatedAt so insertion order survives the created_at sort
		sch.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
	}

	if err := s.scholarshipRepo.CreateBatch(ctx, scholarships); err != nil {
		return 0, err
	}

	metrics.SeededScholarships.Set(float64(len(scholarships)))
	logger.Info(ctx, "Catalog seeded", zap.Int("scholarships", len(scholarships)))
	return len(scholarships), nil
}
