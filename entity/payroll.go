package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the semantic bucket assigned to one earnings line.
type Category string

const (
	CategoryRides         Category = "rides"
	CategoryTips          Category = "tips"
	CategoryPromotions    Category = "promotions"
	CategoryOnlineTime    Category = "online_time"
	CategoryFlaggedRoutes Category = "flagged_routes"
	CategoryWaitTime      Category = "wait_time"
	CategoryOther         Category = "other"
)

// AllCategories lists every bucket in display order.
func AllCategories() []Category {
	return []Category{
		CategoryRides,
		CategoryTips,
		CategoryPromotions,
		CategoryOnlineTime,
		CategoryFlaggedRoutes,
		CategoryWaitTime,
		CategoryOther,
	}
}

// RawTransactionRow is one line of an earnings export after normalization.
// Description holds the lower-cased working copy used for classification;
// OriginalDescription keeps the source casing for diagnostics.
type RawTransactionRow struct {
	DriverID            string          `json:"driver_id"`
	DriverName          string          `json:"driver_name"`
	Location            string          `json:"location"`
	SubLocation         string          `json:"sub_location"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description"`
	OriginalDescription string          `json:"original_description"`
	WorkingPeriod       string          `json:"working_period"`
	Category            Category        `json:"category"`

	// ReferenceDate is nil when the source file has no date column or the
	// cell did not parse. HasDateColumn tells those two cases apart: under a
	// date filter a row from a dated file with a broken cell is excluded,
	// while rows from undated files pass through.
	ReferenceDate *time.Time `json:"reference_date,omitempty"`
	HasDateColumn bool       `json:"-"`
}

// DriverConsolidation is the per-driver summary computed from classified rows.
type DriverConsolidation struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`

	Rides         decimal.Decimal `json:"rides"`
	Tips          decimal.Decimal `json:"tips"`
	Promotions    decimal.Decimal `json:"promotions"`
	OnlineTime    decimal.Decimal `json:"online_time"`
	FlaggedRoutes decimal.Decimal `json:"flagged_routes"`
	WaitTime      decimal.Decimal `json:"wait_time"`
	Other         decimal.Decimal `json:"other"`

	Total        decimal.Decimal `json:"total"`
	Advance60Pct decimal.Decimal `json:"advance_60pct"`
	FinalAdvance decimal.Decimal `json:"final_advance"`

	Locations        string   `json:"locations"`
	LocationCount    int      `json:"location_count"`
	SubLocations     string   `json:"sub_locations"`
	SubLocationCount int      `json:"sub_location_count"`
	WorkingPeriods   []string `json:"working_periods"`

	// OtherDescriptions concatenates the distinct original-case descriptions
	// of rows that fell into the "other" bucket, for manual review.
	OtherDescriptions string `json:"other_descriptions"`
}

// CategoryAmount returns the summed amount for one bucket.
func (c DriverConsolidation) CategoryAmount(cat Category) decimal.Decimal {
	switch cat {
	case CategoryRides:
		return c.Rides
	case CategoryTips:
		return c.Tips
	case CategoryPromotions:
		return c.Promotions
	case CategoryOnlineTime:
		return c.OnlineTime
	case CategoryFlaggedRoutes:
		return c.FlaggedRoutes
	case CategoryWaitTime:
		return c.WaitTime
	default:
		return c.Other
	}
}

// BatchOptions carries the caller-supplied filters for one orchestrator run.
type BatchOptions struct {
	// ReferenceDate filters rows to those whose own date-of-record matches.
	ReferenceDate *time.Time

	// DriverIDs, when non-empty, is an explicit allowlist. An empty slice
	// means "not provided", never "filter to nothing".
	DriverIDs []string

	// OnlyRegistered keeps only drivers known to the driver directory.
	// Ignored when DriverIDs is non-empty.
	OnlyRegistered bool
}

// BatchResult aggregates one orchestrator run over a file set.
type BatchResult struct {
	Rows           []RawTransactionRow   `json:"-"`
	Consolidations []DriverConsolidation `json:"consolidations"`

	TotalDrivers int             `json:"total_drivers"`
	GrandTotal   decimal.Decimal `json:"grand_total"`

	// FileErrors maps base filename to the error that made the file skip.
	FileErrors map[string]string `json:"file_errors"`

	FilesAttempted int `json:"files_attempted"`
	FilesSucceeded int `json:"files_succeeded"`
	FilesFailed    int `json:"files_failed"`

	RegisteredDrivers int       `json:"registered_drivers"`
	DriversWithData   int       `json:"drivers_with_data"`
	ProcessedAt       time.Time `json:"processed_at"`
}
