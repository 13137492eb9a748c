package services

import (
	"time"

	"points-ledger/app/models"
	"points-ledger/app/upload"

	"github.com/rs/zerolog"
)

// MaxLeaderboardRows caps the admin listing.
const MaxLeaderboardRows = 100

type PointsRepo interface {
	FindByUserID(userID string) (*models.PointsRecord, error)
	Top(limit int) ([]models.PointsRecord, error)
	Upsert(rec *models.PointsRecord) error
}

type PointsService struct {
	points PointsRepo
	log    zerolog.Logger
	now    func() time.Time
}

func NewPointsService(points PointsRepo, log zerolog.Logger) *PointsService {
	return &PointsService{points: points, log: log, now: time.Now}
}

// Query returns (nil, nil) when the user has no record.
func (s *PointsService) Query(userID string) (*models.PointsRecord, error) {
	return s.points.FindByUserID(userID)
}

func (s *PointsService) Leaderboard() ([]models.PointsRecord, error) {
	return s.points.Top(MaxLeaderboardRows)
}

// Import writes one upsert per row. Rows are independent: a failed write
// is logged and skipped, never aborting the batch. The returned count is
// rows actually written, so a duplicate user_id within the batch counts
// twice even though only the last row survives.
func (s *PointsService) Import(rows []upload.Row) (int, error) {
	stamp := s.now()
	written := 0
	for _, row := range rows {
		rec := &models.PointsRecord{
			UserID:      row.UserID,
			UserName:    row.UserName,
			TotalPoints: row.Points,
			ValidDays:   row.ValidDays,
			LastUpdated: stamp,
		}
		if err := s.points.Upsert(rec); err != nil {
			s.log.Error().Err(err).Str("user_id", row.UserID).Msg("points upsert failed")
			continue
		}
		written++
	}
	return written, nil
}
