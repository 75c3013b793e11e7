// Package boards generates sample shift-scheduling workbooks for manual
// import into a Monday.com board.
package boards

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// Kind selects a board generator.
type Kind string

const (
	// KindMonday is the fixed ABS shift board with column mapping and instructions sheets.
	KindMonday Kind = "monday"
	// KindSample is the randomized, anonymized ABS shift board.
	KindSample Kind = "sample"
	// KindMSM is the randomized Mobile Shift Maintenance exception board.
	KindMSM Kind = "msm"
)

// Kinds lists all generators in display order.
var Kinds = []Kind{KindMonday, KindSample, KindMSM}

// ParseKind converts a name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid board: %s (must be monday, sample, or msm)", s)
}

// Options configures generation.
type Options struct {
	// Seed makes random boards reproducible. Zero picks a time-based seed.
	Seed uint64
	// Rows overrides the number of random rows. Zero uses the board default.
	Rows int
	// BaseDate is the first day of the sampled month. Zero means 2025-09-01.
	BaseDate time.Time
}

func (o Options) rng() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (o Options) rows(def int) int {
	if o.Rows > 0 {
		return o.Rows
	}
	return def
}

func (o Options) baseDate() time.Time {
	if o.BaseDate.IsZero() {
		return time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	}
	y, m, d := o.BaseDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Generate builds the workbook for kind.
func Generate(kind Kind, opts Options) (*models.Workbook, error) {
	switch kind {
	case KindMonday:
		return MondayBoard(), nil
	case KindSample:
		return SampleBoard(opts), nil
	case KindMSM:
		return MSMBoard(opts), nil
	default:
		return nil, fmt.Errorf("invalid board: %s", kind)
	}
}

// Notes returns the follow-up lines printed after a board is written.
func Notes(kind Kind) []string {
	switch kind {
	case KindMonday:
		return []string{
			"Next steps:",
			"1. Download the Excel file",
			"2. Go to Monday.com and create a new board",
			"3. Import this Excel file",
			"4. Name the board 'ABS Shift Data'",
			"5. Get the board ID from the URL",
			"6. Add MONDAY_BOARD_ID to your .env file",
			"7. Run 'npm run sync-monday'",
		}
	case KindSample:
		return []string{
			"Sample data includes:",
			"   - Fake client names (Sample Client A-F)",
			"   - Fake employee names (John Smith, Jane Doe, etc.)",
			"   - Sample products and locations",
			"   - Random dates in the sampled month",
			"   - Random time ranges and rates",
			"   - Sample statuses (Open, Assigned, Completed)",
			"No real client data included - safe to commit to repository",
		}
	case KindMSM:
		return []string{
			"Sample data includes:",
			"   - Fake customer names (Sample Customer A-F)",
			"   - Fake employee names (John Smith, Jane Doe, etc.)",
			"   - Sample exception types (Late Arrival, No Show, etc.)",
			"   - Random dates in the sampled month",
			"   - Realistic time ranges and hour calculations",
			"No real client data included - safe to commit to repository",
		}
	}
	return nil
}

// clock formats a time of day as shown on the board, e.g. "06:40 AM".
func clock(t time.Time) string {
	return t.Format("03:04 PM")
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.IntN(len(pool))]
}

// between returns a random int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

var quarterHours = []int{0, 15, 30, 45}

var sampleEmployees = []string{
	"John Smith", "Jane Doe", "Mike Johnson", "Sarah Wilson",
	"David Brown", "Lisa Davis", "Tom Miller", "Amy Garcia",
}
