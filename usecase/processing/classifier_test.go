package processing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abjp/driver-payroll/entity"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        entity.Category
	}{
		{"tips", "Gorjeta do cliente", entity.CategoryTips},
		{"promotions", "Promocao entregador - meta semanal", entity.CategoryPromotions},
		{"rides", "Corridas concluidas no periodo", entity.CategoryRides},
		{"online time", "Valor por hora online garantido", entity.CategoryOnlineTime},
		{"flagged routes", "ajuste route_with_occurrence 123", entity.CategoryFlaggedRoutes},
		{"wait time", "Tempo de espera na origem do pedido", entity.CategoryWaitTime},
		{"unknown lands in other", "Bonus especial de fim de ano", entity.CategoryOther},
		{"empty lands in other", "", entity.CategoryOther},
		{"case insensitive", "GORJETA", entity.CategoryTips},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.description))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// When a description carries two markers the earlier rule wins. Every
	// adjacent pair of the priority list is exercised.
	cases := []struct {
		name        string
		description string
		want        entity.Category
	}{
		{
			"tips over promotions",
			"gorjeta da promocao entregador",
			entity.CategoryTips,
		},
		{
			"promotions over rides",
			"promocao entregador sobre corridas concluidas",
			entity.CategoryPromotions,
		},
		{
			"rides over online time",
			"corridas concluidas com valor por hora online",
			entity.CategoryRides,
		},
		{
			"online time over flagged routes",
			"valor por hora online route_with_occurrence",
			entity.CategoryOnlineTime,
		},
		{
			"flagged routes over wait time",
			"route_with_occurrence por tempo de espera na origem",
			entity.CategoryFlaggedRoutes,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.description))
		})
	}
}
