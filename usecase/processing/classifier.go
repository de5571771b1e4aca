package processing

import (
	"strings"

	"github.com/abjp/driver-payroll/entity"
)

// classificationRules is an ordered priority list: the first marker found in
// the description wins. Descriptions can contain more than one marker, so
// this order is part of the business rule and must not be rearranged. The
// markers are the literal substrings of the earnings export, which is written
// in Brazilian Portuguese.
var classificationRules = []struct {
	marker   string
	category entity.Category
}{
	{"gorjeta", entity.CategoryTips},
	{"promocao entregador", entity.CategoryPromotions},
	{"corridas concluidas", entity.CategoryRides},
	{"valor por hora online", entity.CategoryOnlineTime},
	{"route_with_occurrence", entity.CategoryFlaggedRoutes},
	{"tempo de espera na origem", entity.CategoryWaitTime},
}

// Classify maps a free-text line description to its semantic bucket. Always
// returns a category; unrecognized descriptions land in "other", which is a
// legitimate bucket that still counts toward totals.
func Classify(description string) entity.Category {
	desc := strings.ToLower(description)
	for _, rule := range classificationRules {
		if strings.Contains(desc, rule.marker) {
			return rule.category
		}
	}
	return entity.CategoryOther
}
