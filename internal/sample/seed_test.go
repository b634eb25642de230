package sample

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	paths, err := Seed(t.TempDir(), Options{Rows: 50, Days: 90, End: end, Seed: 7})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	f, err := os.Open(paths["campaign_budget"])
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 51)
	assert.Equal(t, []string{"campaign_id", "budget", "date"}, records[0])

	earliest := end.AddDate(0, 0, -89)
	for _, rec := range records[1:] {
		d, err := time.Parse("2006-01-02", rec[2])
		require.NoError(t, err)
		assert.False(t, d.Before(earliest), "date %s before window", rec[2])
		assert.False(t, d.After(end), "date %s after end", rec[2])
	}
}

func TestSeedRejectsEmptyOptions(t *testing.T) {
	_, err := Seed(t.TempDir(), Options{})
	assert.Error(t, err)
}
