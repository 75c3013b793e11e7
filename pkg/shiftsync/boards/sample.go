package boards

import (
	"fmt"
	"time"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

var (
	sampleClients = []string{
		"Sample Client A", "Sample Client B", "Sample Client C",
		"Sample Client D", "Sample Client E", "Sample Client F",
	}
	sampleProducts = []string{
		"Personal Care", "Companion Care", "Respite Care",
		"Medication Management", "Transportation", "Meal Prep",
	}
	sampleLocations = []string{
		"TN - Memphis", "TN - Nashville", "AR - Little Rock",
		"MS - Jackson", "AL - Birmingham", "LA - New Orleans",
	}
	sampleStatuses = []string{"Open", "Assigned", "Completed"}
)

// SampleBoard builds an anonymized ABS shift board with random rows.
func SampleBoard(opts Options) *models.Workbook {
	rng := opts.rng()
	base := opts.baseDate()
	n := opts.rows(20)

	rows := make([][]any, 0, n)
	for i := 0; i < n; i++ {
		day := base.AddDate(0, 0, rng.IntN(30))
		client := pick(rng, sampleClients)
		employee := pick(rng, sampleEmployees)

		startHour := between(rng, 6, 10)
		start := day.Add(time.Duration(startHour)*time.Hour + time.Duration(pick(rng, quarterHours))*time.Minute)
		endHour := startHour + between(rng, 2, 8)
		end := day.Add(time.Duration(endHour)*time.Hour + time.Duration(pick(rng, quarterHours))*time.Minute)

		startTime, endTime := clock(start), clock(end)
		rows = append(rows, []any{
			day.Format("2006-01-02"),
			startTime + " - " + endTime,
			startTime,
			endTime,
			client,
			employee,
			pick(rng, sampleLocations),
			pick(rng, sampleProducts),
			fmt.Sprintf("$%.2f", uniform(rng, 25, 45)),
			fmt.Sprintf("$%.2f", uniform(rng, 15, 25)),
			pick(rng, sampleStatuses),
		})
	}

	return &models.Workbook{
		Name: mondayFile,
		Sheets: []models.Sheet{
			{Name: shiftSheet, Header: ShiftColumns, Rows: rows, Widths: shiftWidths},
		},
	}
}
