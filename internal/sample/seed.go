// Package sample generates demo input files for the pipeline.
package sample

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Options controls the generated data. Dates are spread over the Days
// days ending at End.
type Options struct {
	Rows int
	Days int
	End  time.Time
	Seed int64
}

// DefaultOptions generates a year of data ending today.
func DefaultOptions() Options {
	return Options{
		Rows: 200,
		Days: 365,
		End:  time.Now().UTC().Truncate(24 * time.Hour),
		Seed: time.Now().UnixNano(),
	}
}

// Files are the generated file names keyed by dataset name.
var Files = map[string]string{
	"campaign_budget":  "campaign_budget.csv",
	"campaign_result":  "campaign_result.csv",
	"product_checkout": "product_checkout.csv",
}

// Seed writes campaign_budget.csv, campaign_result.csv and
// product_checkout.csv into dir, creating it if needed. It returns the
// written paths keyed by dataset name.
func Seed(dir string, opts Options) (map[string]string, error) {
	if opts.Rows <= 0 || opts.Days <= 0 {
		return nil, fmt.Errorf("seed: rows and days must be positive, got %d and %d", opts.Rows, opts.Days)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	r := rand.New(rand.NewSource(opts.Seed))

	frames := map[string]dataframe.DataFrame{
		"campaign_budget":  campaignBudget(r, opts),
		"campaign_result":  campaignResult(r, opts),
		"product_checkout": productCheckout(r, opts),
	}

	paths := make(map[string]string, len(frames))
	for name, df := range frames {
		path := filepath.Join(dir, Files[name])
		if err := write(path, df); err != nil {
			return nil, fmt.Errorf("seed %s: %w", name, err)
		}
		paths[name] = path
	}
	return paths, nil
}

func write(path string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = df.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dates(r *rand.Rand, opts Options) []string {
	out := make([]string, opts.Rows)
	for i := range out {
		out[i] = opts.End.AddDate(0, 0, -r.Intn(opts.Days)).Format("2006-01-02")
	}
	return out
}

func campaignBudget(r *rand.Rand, opts Options) dataframe.DataFrame {
	ids := make([]int, opts.Rows)
	budgets := make([]float64, opts.Rows)
	for i := range ids {
		ids[i] = r.Intn(5) + 1
		budgets[i] = float64(r.Intn(500000)) / 100 // 0.00 .. 4999.99
	}
	return dataframe.New(
		series.New(ids, series.Int, "campaign_id"),
		series.New(budgets, series.Float, "budget"),
		series.New(dates(r, opts), series.String, "date"),
	)
}

func campaignResult(r *rand.Rand, opts Options) dataframe.DataFrame {
	campaigns := make([]int, opts.Rows)
	users := make([]int, opts.Rows)
	checkouts := make([]int, opts.Rows)
	clicks := make([]int, opts.Rows)
	for i := range campaigns {
		campaigns[i] = r.Intn(5) + 1
		users[i] = r.Intn(100) + 1
		checkouts[i] = 1000 + i
		clicks[i] = r.Intn(2)
	}
	return dataframe.New(
		series.New(campaigns, series.Int, "campaign_id"),
		series.New(users, series.Int, "user_id"),
		series.New(checkouts, series.Int, "checkout_id"),
		series.New(clicks, series.Int, "is_click"),
		series.New(dates(r, opts), series.String, "date"),
	)
}

func productCheckout(r *rand.Rand, opts Options) dataframe.DataFrame {
	checkouts := make([]int, opts.Rows)
	done := make([]int, opts.Rows)
	qty := make([]int, opts.Rows)
	prices := make([]float64, opts.Rows)
	for i := range checkouts {
		checkouts[i] = 1000 + i
		done[i] = r.Intn(2)
		qty[i] = r.Intn(10) + 1
		prices[i] = float64(r.Intn(10000)+1) / 100
	}
	return dataframe.New(
		series.New(checkouts, series.Int, "checkout_id"),
		series.New(done, series.Int, "is_checkout"),
		series.New(qty, series.Int, "qty"),
		series.New(prices, series.Float, "unit_price"),
		series.New(dates(r, opts), series.String, "date"),
	)
}
