package processing

import (
	"sort"
	"strings"
	"time"

	"github.com/abjp/driver-payroll/entity"

	"github.com/shopspring/decimal"
)

type driverKey struct {
	id   string
	name string
}

// consolidate groups classified rows per driver and derives the payable
// amounts. The rounding order is penny-sensitive and mirrors the reference
// business rule: category sums are rounded to 2 decimals first, the total is
// the rounded sum of the rounded sums, and the advance amounts are rounded at
// each derivation step.
func consolidate(rows []entity.RawTransactionRow, refDate *time.Time, advancePercent, flatFee decimal.Decimal) []entity.DriverConsolidation {
	if refDate != nil {
		rows = filterByReferenceDate(rows, *refDate)
	}
	if len(rows) == 0 {
		return []entity.DriverConsolidation{}
	}

	type group struct {
		sums       map[entity.Category]decimal.Decimal
		locations  map[string]bool
		subLocs    map[string]bool
		periods    map[string]bool
		otherDescr map[string]bool
	}

	groups := make(map[driverKey]*group)
	var order []driverKey

	for _, row := range rows {
		key := driverKey{id: row.DriverID, name: row.DriverName}
		g, ok := groups[key]
		if !ok {
			g = &group{
				sums:       make(map[entity.Category]decimal.Decimal),
				locations:  make(map[string]bool),
				subLocs:    make(map[string]bool),
				periods:    make(map[string]bool),
				otherDescr: make(map[string]bool),
			}
			groups[key] = g
			order = append(order, key)
		}

		g.sums[row.Category] = g.sums[row.Category].Add(row.Amount)
		if row.Location != "" {
			g.locations[row.Location] = true
		}
		if row.SubLocation != "" {
			g.subLocs[row.SubLocation] = true
		}
		if row.WorkingPeriod != "" {
			g.periods[row.WorkingPeriod] = true
		}
		if row.Category == entity.CategoryOther && row.OriginalDescription != "" {
			g.otherDescr[row.OriginalDescription] = true
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].id != order[j].id {
			return order[i].id < order[j].id
		}
		return order[i].name < order[j].name
	})

	out := make([]entity.DriverConsolidation, 0, len(order))
	for _, key := range order {
		g := groups[key]

		rounded := func(cat entity.Category) decimal.Decimal {
			return g.sums[cat].Round(2)
		}

		c := entity.DriverConsolidation{
			DriverID:      key.id,
			DriverName:    key.name,
			Rides:         rounded(entity.CategoryRides),
			Tips:          rounded(entity.CategoryTips),
			Promotions:    rounded(entity.CategoryPromotions),
			OnlineTime:    rounded(entity.CategoryOnlineTime),
			FlaggedRoutes: rounded(entity.CategoryFlaggedRoutes),
			WaitTime:      rounded(entity.CategoryWaitTime),
			Other:         rounded(entity.CategoryOther),
		}

		// All seven buckets count toward the payable total, wait time and
		// "other" included. Only tips are excluded from the advance base.
		c.Total = c.Rides.
			Add(c.Tips).
			Add(c.Promotions).
			Add(c.OnlineTime).
			Add(c.FlaggedRoutes).
			Add(c.WaitTime).
			Add(c.Other).
			Round(2)

		c.Advance60Pct = clampZero(c.Total.Sub(c.Tips).Mul(advancePercent).Round(2))
		c.FinalAdvance = clampZero(c.Advance60Pct.Sub(flatFee).Round(2))

		c.Locations, c.LocationCount = joinDistinct(g.locations, " / ")
		c.SubLocations, c.SubLocationCount = joinDistinct(g.subLocs, " / ")
		c.WorkingPeriods = sortedKeys(g.periods)
		c.OtherDescriptions, _ = joinDistinct(g.otherDescr, " | ")

		out = append(out, c)
	}

	return out
}

// filterByReferenceDate keeps rows whose own date-of-record equals the
// filter date. Rows from files without a date column pass through untouched
// (the data lacks the granularity, a defined no-op); rows from dated files
// with an unparseable cell are excluded.
func filterByReferenceDate(rows []entity.RawTransactionRow, refDate time.Time) []entity.RawTransactionRow {
	day := time.Date(refDate.Year(), refDate.Month(), refDate.Day(), 0, 0, 0, 0, time.UTC)

	kept := make([]entity.RawTransactionRow, 0, len(rows))
	for _, row := range rows {
		if !row.HasDateColumn {
			kept = append(kept, row)
			continue
		}
		if row.ReferenceDate != nil && row.ReferenceDate.Equal(day) {
			kept = append(kept, row)
		}
	}
	return kept
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero.Round(2)
	}
	return d
}

func joinDistinct(set map[string]bool, sep string) (string, int) {
	keys := sortedKeys(set)
	return strings.Join(keys, sep), len(keys)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
