package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInsightsDefaultCommute(t *testing.T) {
	eng := newTestEngine(t, fixtureRecords())

	insights := eng.GenerateInsights(context.Background(), 0)
	require.Len(t, insights, 3)

	// 30 km/day: 1752 kg/year baseline CO2 over five years.
	assert.Equal(t, "💡 Switching to an EV can reduce 8.8 tons of CO₂ in 5 years.", insights[0])
	// Baseline petrol 75920/year versus baseline EV 12514/year.
	assert.Equal(t, "💡 You could save ₹3.17 L over 5 years.", insights[1])
	assert.Equal(t, "💡 Break-even in 7.9 years — then it's pure savings!", insights[2])
}

func TestGenerateInsightsShortCommuteSkipsBreakEven(t *testing.T) {
	eng := newTestEngine(t, fixtureRecords())

	// At 5 km/day the premium takes decades to recover.
	insights := eng.GenerateInsights(context.Background(), 5)
	require.Len(t, insights, 3)
	assert.Equal(t, "💡 EVs keep getting more affordable every year 🚀", insights[2])
}

func TestGenerateInsightsLongCommute(t *testing.T) {
	eng := newTestEngine(t, fixtureRecords())

	insights := eng.GenerateInsights(context.Background(), 100)
	require.Len(t, insights, 3)
	assert.Equal(t, "💡 Switching to an EV can reduce 29.2 tons of CO₂ in 5 years.", insights[0])
	assert.Contains(t, insights[2], "Break-even in 2.4 years")
}
