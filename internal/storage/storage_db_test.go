package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.db")

	st, err := Open("file:" + path + "?cache=shared&mode=rwc")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func seedWorkouts(t *testing.T, st *Storage) {
	t.Helper()
	base := time.Date(2025, 2, 7, 8, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{ID: "swim-1", WorkoutType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336, CreatedAt: base},
		{ID: "run-1", WorkoutType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 797.805, CreatedAt: base.Add(time.Hour)},
		{ID: "walk-1", WorkoutType: "SportsWalking", Duration: 1, Distance: 5.85, Speed: 5.85, Calories: 348.9453125, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "run-2", WorkoutType: "Running", Duration: 0.5, Distance: 3.25, Speed: 6.5, Calories: 158.1, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, w := range workouts {
		require.NoError(t, st.insertWorkout(w))
	}
}

func ids(workouts []models.Workout) []string {
	out := make([]string, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, w.ID)
	}
	return out
}

func TestOpenInitializesSchema(t *testing.T) {
	st := openTestStorage(t)

	var count int
	err := st.DB.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'workouts'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Running the migration twice is harmless.
	require.NoError(t, st.InitializeDB())
}

func TestSaveWorkout(t *testing.T) {
	st := openTestStorage(t)
	msg := training.InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336}

	before := time.Now().UTC().Truncate(time.Second)
	id, err := st.SaveWorkout(msg)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	workouts, err := st.ListWorkouts("", 0)
	require.NoError(t, err)
	require.Len(t, workouts, 1)

	w := workouts[0]
	assert.Equal(t, id, w.ID)
	assert.Equal(t, "Swimming", w.WorkoutType)
	assert.InDelta(t, 0.9936, w.Distance, 1e-12)
	assert.InDelta(t, 336.0, w.Calories, 1e-12)
	assert.False(t, w.CreatedAt.Before(before))
	assert.WithinDuration(t, time.Now(), w.CreatedAt, time.Minute)
}

func TestListWorkouts(t *testing.T) {
	st := openTestStorage(t)
	seedWorkouts(t, st)

	tests := []struct {
		name       string
		filterType string
		limit      int
		want       []string
	}{
		{"newest first", "", 0, []string{"run-2", "walk-1", "run-1", "swim-1"}},
		{"filter", "Running", 0, []string{"run-2", "run-1"}},
		{"filter ignores case", "sportswalking", 0, []string{"walk-1"}},
		{"limit", "", 2, []string{"run-2", "walk-1"}},
		{"filter and limit", "Running", 1, []string{"run-2"}},
		{"no match", "Cycling", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workouts, err := st.ListWorkouts(tt.filterType, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(workouts))
		})
	}
}

func TestListWorkoutsRoundTrip(t *testing.T) {
	st := openTestStorage(t)
	seedWorkouts(t, st)

	workouts, err := st.ListWorkouts("SportsWalking", 0)
	require.NoError(t, err)
	require.Len(t, workouts, 1)

	w := workouts[0]
	assert.True(t, time.Date(2025, 2, 7, 10, 0, 0, 0, time.UTC).Equal(w.CreatedAt))
	assert.Equal(t, time.UTC, w.CreatedAt.Location())
	assert.Equal(t, 348.9453125, w.Calories)
	assert.Equal(t, 5.85, w.Speed)
}

func TestExportToTOML(t *testing.T) {
	st := openTestStorage(t)
	seedWorkouts(t, st)

	out := filepath.Join(t.TempDir(), "workouts.toml")
	require.NoError(t, st.ExportToTOML(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var dump models.WorkoutDumpTOML
	_, err = toml.Decode(string(data), &dump)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-2", "walk-1", "run-1", "swim-1"}, ids(dump.Workouts))
	assert.Equal(t, "Running", dump.Workouts[0].WorkoutType)
	assert.True(t, time.Date(2025, 2, 7, 11, 0, 0, 0, time.UTC).Equal(dump.Workouts[0].CreatedAt))
}

func TestExportToTOMLBadPath(t *testing.T) {
	st := openTestStorage(t)

	err := st.ExportToTOML(filepath.Join(t.TempDir(), "missing", "workouts.toml"))
	assert.ErrorContains(t, err, "creating")
}
