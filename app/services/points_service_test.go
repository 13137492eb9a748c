package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"points-ledger/app/models"
	"points-ledger/app/upload"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePointsRepo struct {
	records map[string]models.PointsRecord
	failFor map[string]error
	upserts int
}

func newFakePointsRepo() *fakePointsRepo {
	return &fakePointsRepo{records: map[string]models.PointsRecord{}, failFor: map[string]error{}}
}

func (f *fakePointsRepo) FindByUserID(userID string) (*models.PointsRecord, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakePointsRepo) Top(limit int) ([]models.PointsRecord, error) {
	out := make([]models.PointsRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePointsRepo) Upsert(rec *models.PointsRecord) error {
	f.upserts++
	if err := f.failFor[rec.UserID]; err != nil {
		return err
	}
	f.records[rec.UserID] = *rec
	return nil
}

func newPointsService(repo PointsRepo) *PointsService {
	return NewPointsService(repo, zerolog.Nop())
}

func TestQueryMissingRecord(t *testing.T) {
	svc := newPointsService(newFakePointsRepo())

	rec, err := svc.Query("U123")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestImportCountsWrittenRows(t *testing.T) {
	repo := newFakePointsRepo()
	svc := newPointsService(repo)

	n, err := svc.Import([]upload.Row{
		{UserID: "U001", UserName: "Alice", Points: 10, ValidDays: 3},
		{UserID: "U002", UserName: "Bob", Points: 5, ValidDays: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, repo.records, 2)
}

// Two rows for the same user in one batch leave exactly one record, with
// the last row's values.
func TestImportLastRowWins(t *testing.T) {
	repo := newFakePointsRepo()
	svc := newPointsService(repo)

	n, err := svc.Import([]upload.Row{
		{UserID: "U001", UserName: "Alice", Points: 10},
		{UserID: "U001", UserName: "Alice", Points: 99},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.records, 1)
	assert.Equal(t, 99, repo.records["U001"].TotalPoints)
}

// A failing row is skipped without aborting the rest of the batch.
func TestImportSkipsFailedRows(t *testing.T) {
	repo := newFakePointsRepo()
	repo.failFor["U002"] = errors.New("deadlock")
	svc := newPointsService(repo)

	n, err := svc.Import([]upload.Row{
		{UserID: "U001", Points: 1},
		{UserID: "U002", Points: 2},
		{UserID: "U003", Points: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, repo.upserts)
	assert.Len(t, repo.records, 2)
}

func TestImportStampsLastUpdated(t *testing.T) {
	repo := newFakePointsRepo()
	svc := newPointsService(repo)
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	_, err := svc.Import([]upload.Row{{UserID: "U001", Points: 1}})
	require.NoError(t, err)
	assert.Equal(t, stamp, repo.records["U001"].LastUpdated)
}

func TestLeaderboardOrdering(t *testing.T) {
	repo := newFakePointsRepo()
	svc := newPointsService(repo)

	_, err := svc.Import([]upload.Row{
		{UserID: "U003", Points: 10},
		{UserID: "U001", Points: 50},
		{UserID: "U002", Points: 10},
	})
	require.NoError(t, err)

	rows, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "U001", rows[0].UserID)
	// tie on points broken by user_id ascending
	assert.Equal(t, "U002", rows[1].UserID)
	assert.Equal(t, "U003", rows[2].UserID)
}
