package boards

import "github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"

// ShiftColumns is the column layout of the ABS shift data sheet.
var ShiftColumns = []string{
	"date", "time", "start_time", "end_time", "client", "employee",
	"location", "product", "bill_rate", "pay_rate", "status",
}

var shiftWidths = []float64{12, 22, 12, 12, 20, 20, 18, 30, 10, 10, 12}

const (
	mondayFile        = "monday_board_import.xlsx"
	shiftSheet        = "ABS Shift Data"
	mappingSheet      = "Column Mapping"
	instructionsSheet = "Instructions"
)

// MondayBoard builds the fixed ABS shift board with reference sheets.
func MondayBoard() *models.Workbook {
	rows := [][]any{
		{"2025-09-01", "6:40 AM - 9:40 AM", "6:40 AM", "9:40 AM", "Smith, Tony", "Nolen, Carlos", "TN - Memphis", "CHOICES Personal Care (T1019)", "$26.36", "$13.00", "Completed"},
		{"2025-09-01", "7:00 AM - 7:00 PM", "7:00 AM", "7:00 PM", "Smith, Bryce", "Johnson, Sarah", "TN - Nashville", "Home Health Aide (HHA)", "$28.50", "$15.00", "Assigned"},
		{"2025-09-02", "8:00 AM - 12:00 PM", "8:00 AM", "12:00 PM", "Davis, Mary", "", "TN - Knoxville", "Personal Care Services", "$25.00", "$12.50", "Open"},
		{"2025-09-02", "2:00 PM - 6:00 PM", "2:00 PM", "6:00 PM", "Wilson, John", "Brown, Michael", "TN - Chattanooga", "Companion Care", "$22.00", "$11.00", "Completed"},
		{"2025-09-03", "9:00 AM - 5:00 PM", "9:00 AM", "5:00 PM", "Taylor, Lisa", "Garcia, Maria", "TN - Memphis", "Skilled Nursing", "$35.00", "$18.00", "Assigned"},
	}

	mapping := models.Sheet{
		Name:   mappingSheet,
		Header: []string{"Column Name", "Monday.com Type", "Description"},
		Rows: [][]any{
			{"date", "Date", "Shift date (YYYY-MM-DD format)"},
			{"time", "Text", `Full time range (e.g., "6:40 AM - 9:40 AM")`},
			{"start_time", "Text", `Start time (e.g., "6:40 AM")`},
			{"end_time", "Text", `End time (e.g., "9:40 AM")`},
			{"client", "Text", `Client name (e.g., "Smith, Tony")`},
			{"employee", "Text", `Employee name (e.g., "Nolen, Carlos")`},
			{"location", "Text", `Work location (e.g., "TN - Memphis")`},
			{"product", "Text", "Service/product type"},
			{"bill_rate", "Text", `Billing rate (e.g., "$26.36")`},
			{"pay_rate", "Text", `Pay rate (e.g., "$13.00")`},
			{"status", "Status", "Shift status: Open (red), Assigned (green), Completed (blue)"},
		},
		Widths: []float64{14, 18, 60},
	}

	instructions := models.Sheet{
		Name:   instructionsSheet,
		Header: []string{"Step", "Action", "Details"},
		Rows: [][]any{
			{1, "Download this Excel file", "Save " + mondayFile + " to your computer"},
			{2, "Go to Monday.com", "Log into your Monday.com workspace"},
			{3, "Create new board", `Click "+" to create a new board`},
			{4, "Import from Excel", `Choose "Import from Excel" option`},
			{5, "Upload file", "Upload this Excel file"},
			{6, "Name the board", `Name it "ABS Shift Data"`},
			{7, "Map columns", "Use the Column Mapping sheet to set correct column types"},
			{8, "Set status colors", "Configure status column: Open=red, Assigned=green, Completed=blue"},
			{9, "Get board ID", "Copy the board ID from the URL and add to .env as MONDAY_BOARD_ID"},
			{10, "Test integration", `Run "npm run sync-monday" to test`},
		},
		Widths: []float64{6, 24, 70},
	}

	return &models.Workbook{
		Name: mondayFile,
		Sheets: []models.Sheet{
			{Name: shiftSheet, Header: ShiftColumns, Rows: rows, Widths: shiftWidths},
			mapping,
			instructions,
		},
	}
}
