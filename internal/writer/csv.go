package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/rickgao/jquants-data/internal/model"
)

// NotAvailable is the sentinel rendered for missing or null fields.
const NotAvailable = "N/A"

// utf8BOM makes Excel open the files as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Fixed headers for the data kinds whose schema is known in advance.
var (
	ListedInfoHeader = []string{
		"Code", "CompanyName", "CompanyNameEnglish",
		"Sector17CodeName", "MarketCode", "ListingDate",
	}

	DailyQuotesHeader = []string{
		"Code", "Date", "Open", "High", "Low", "Close", "Volume",
		"TurnoverValue", "AdjustmentFactor", "AdjustmentOpen",
		"AdjustmentHigh", "AdjustmentLow", "AdjustmentClose", "AdjustmentVolume",
	}

	StatementsHeader = []string{
		"LocalCode", "DisclosedDate", "TypeOfDocument", "TypeOfCurrentPeriod",
		"CurrentPeriodEndDate", "NetSales", "OperatingProfit", "OrdinaryProfit",
		"Profit", "EarningsPerShare", "ForecastNetSales", "ForecastOperatingProfit",
		"ForecastOrdinaryProfit", "ForecastProfit",
	}

	AnnouncementsHeader = []string{
		"Code", "Date", "CompanyName", "FiscalYear", "FiscalQuarter",
		"SectorName", "Section",
	}
)

// WriteCSV writes records under a fixed header. Fields absent from a record
// render as the NotAvailable sentinel.
func WriteCSV(records []model.Record, header []string, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("write csv %s: no records", path)
	}
	return writeCSVFile(records, header, path)
}

// WriteDynamicCSV writes records under a header derived from the first
// record's keys, for data kinds whose schema is not known in advance. Keys
// are sorted so output is deterministic; fields later records lack render as
// the NotAvailable sentinel.
func WriteDynamicCSV(records []model.Record, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("write csv %s: no records", path)
	}

	header := make([]string, 0, len(records[0]))
	for key := range records[0] {
		header = append(header, key)
	}
	sort.Strings(header)

	return writeCSVFile(records, header, path)
}

func writeCSVFile(records []model.Record, header []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range records {
		for i, field := range header {
			row[i] = renderValue(rec, field)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// renderValue formats one field as CSV text. encoding/json decodes every
// number as float64, so integers are recovered where the value is whole.
func renderValue(rec model.Record, field string) string {
	v, ok := rec[field]
	if !ok || v == nil {
		return NotAvailable
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
