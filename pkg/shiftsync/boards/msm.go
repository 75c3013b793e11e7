package boards

import (
	"fmt"
	"time"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// MSMColumns is the column layout of the MSM data sheet.
var MSMColumns = []string{
	"Date", "Customer", "Employee",
	"Sch Start", "Sch End", "Sch Hrs",
	"Actual Start", "Actual End", "Actual Hrs",
	"Adjusted Start", "Adjusted End", "Adjusted Hrs",
	"Exception Type",
}

const (
	msmFile  = "msm_board_import.xlsx"
	msmSheet = "MSM Data"

	exceptionRate = 0.3
)

var (
	sampleCustomers = []string{
		"Sample Customer A", "Sample Customer B", "Sample Customer C",
		"Sample Customer D", "Sample Customer E", "Sample Customer F",
	}
	sampleExceptionTypes = []string{
		"Late Arrival", "Early Departure", "No Show", "Call Off",
		"Overtime", "Under Time", "Schedule Change", "Emergency",
	}
	minuteJitter = []int{-15, 0, 15}
)

// MSMBoard builds a Mobile Shift Maintenance exception board with random rows.
func MSMBoard(opts Options) *models.Workbook {
	rng := opts.rng()
	base := opts.baseDate()
	n := opts.rows(25)

	at := func(day time.Time, hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	jitter := func(t time.Time) time.Time {
		return t.Add(time.Duration(between(rng, -1, 1))*time.Hour + time.Duration(pick(rng, minuteJitter))*time.Minute)
	}

	rows := make([][]any, 0, n)
	for i := 0; i < n; i++ {
		day := base.AddDate(0, 0, rng.IntN(30))
		customer := pick(rng, sampleCustomers)
		employee := pick(rng, sampleEmployees)

		schStartHour := between(rng, 6, 10)
		schStart := at(day, schStartHour, pick(rng, quarterHours))
		schEnd := at(day, schStartHour+between(rng, 6, 10), pick(rng, quarterHours))

		actualStart := jitter(schStart)
		actualEnd := jitter(schEnd)

		schHours := schEnd.Sub(schStart).Hours()
		actualHours := actualEnd.Sub(actualStart).Hours()
		adjustedHours := actualHours + uniform(rng, -0.5, 0.5)

		var exception any
		if rng.Float64() < exceptionRate {
			exception = pick(rng, sampleExceptionTypes)
		}

		rows = append(rows, []any{
			day.Format("2006-01-02"),
			customer,
			employee,
			clock(schStart),
			clock(schEnd),
			hours(schHours),
			clock(actualStart),
			clock(actualEnd),
			hours(actualHours),
			clock(actualStart),
			clock(actualEnd),
			hours(adjustedHours),
			exception,
		})
	}

	return &models.Workbook{
		Name: msmFile,
		Sheets: []models.Sheet{
			{Name: msmSheet, Header: MSMColumns, Rows: rows},
		},
	}
}

func hours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}
