package validation

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/kid-econ/progress-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeProgress_NonObjectInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"string", "progress"},
		{"number", float64(42)},
		{"bool", true},
		{"array", []any{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, SanitizeProgress(tt.input))
		})
	}
}

func TestSanitizeProgress_EmptyObjectGetsAllDefaults(t *testing.T) {
	rec := SanitizeProgress(map[string]any{})
	require.NotNil(t, rec)

	assert.Equal(t, models.DefaultPlayerName, rec.PlayerName)
	assert.Equal(t, float64(models.DefaultCash), rec.Cash)
	assert.Equal(t, float64(0), rec.RewardPoints)
	assert.Equal(t, float64(0), rec.CurrentScenario)
	assert.Equal(t, []models.ResultEntry{}, rec.Results)
	assert.Equal(t, float64(0), rec.BestStreak)
	assert.False(t, rec.Onboarded)
	assert.Equal(t, models.DifficultyEasy, rec.SelectedDifficulty)
	assert.Equal(t, models.AgeBandMiddle, rec.LearnerAgeBand)
	assert.Equal(t, []string{}, rec.OwnedItemIDs)
	assert.Equal(t, models.DefaultCharacterID, rec.EquippedCharacter)
	assert.Equal(t, models.DefaultHomeID, rec.EquippedHome)
	assert.Equal(t, float64(0), rec.TotalPointsSpent)
	assert.NotEmpty(t, rec.UpdatedAt)
}

func TestSanitizeProgress_PlayerName(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"trimmed", "  kid ", "kid"},
		{"kept as is", "탐험가", "탐험가"},
		{"truncated to 24 runes", strings.Repeat("가", 30), strings.Repeat("가", 24)},
		{"empty falls to default", "", models.DefaultPlayerName},
		{"whitespace only falls to default", "   ", models.DefaultPlayerName},
		{"non-string falls to default", float64(7), models.DefaultPlayerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := SanitizeProgress(map[string]any{"playerName": tt.input})
			require.NotNil(t, rec)
			assert.Equal(t, tt.want, rec.PlayerName)
		})
	}
}

func TestSanitizeProgress_NumericCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"finite number accepted", float64(2500), 2500},
		{"zero accepted", float64(0), 0},
		{"negative accepted", float64(-10), -10},
		{"infinity falls to default", math.Inf(1), models.DefaultCash},
		{"NaN falls to default", math.NaN(), models.DefaultCash},
		{"numeric string is not coerced", "2500", models.DefaultCash},
		{"bool falls to default", true, models.DefaultCash},
		{"missing falls to default", nil, models.DefaultCash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := SanitizeProgress(map[string]any{"cash": tt.input})
			require.NotNil(t, rec)
			assert.Equal(t, tt.want, rec.Cash)
		})
	}
}

func TestSanitizeProgress_Enums(t *testing.T) {
	rec := SanitizeProgress(map[string]any{
		"selectedDifficulty": "hard",
		"learnerAgeBand":     "older",
	})
	require.NotNil(t, rec)
	assert.Equal(t, models.DifficultyHard, rec.SelectedDifficulty)
	assert.Equal(t, models.AgeBandOlder, rec.LearnerAgeBand)

	// No case-insensitive matching, no typos.
	rec = SanitizeProgress(map[string]any{
		"selectedDifficulty": "HARD",
		"learnerAgeBand":     "oldest",
	})
	require.NotNil(t, rec)
	assert.Equal(t, models.DifficultyEasy, rec.SelectedDifficulty)
	assert.Equal(t, models.AgeBandMiddle, rec.LearnerAgeBand)
}

func TestSanitizeProgress_OwnedItemIDs(t *testing.T) {
	rec := SanitizeProgress(map[string]any{
		"ownedItemIds": []any{"char_default", float64(12), "hat_red", nil, true},
	})
	require.NotNil(t, rec)
	assert.Equal(t, []string{"char_default", "hat_red"}, rec.OwnedItemIDs)

	t.Run("not an array", func(t *testing.T) {
		rec := SanitizeProgress(map[string]any{"ownedItemIds": "char_default"})
		require.NotNil(t, rec)
		assert.Equal(t, []string{}, rec.OwnedItemIDs)
	})

	t.Run("truncated to 300", func(t *testing.T) {
		items := make([]any, 400)
		for i := range items {
			items[i] = "item"
		}
		rec := SanitizeProgress(map[string]any{"ownedItemIds": items})
		require.NotNil(t, rec)
		assert.Len(t, rec.OwnedItemIDs, models.MaxOwnedItems)
	})
}

func TestSanitizeProgress_Results(t *testing.T) {
	rec := SanitizeProgress(map[string]any{
		"results": []any{
			map[string]any{"scenarioId": float64(1)},
			"not-an-object",
			map[string]any{"scenarioId": float64(2)},
		},
	})
	require.NotNil(t, rec)
	require.Len(t, rec.Results, 2)
	assert.Equal(t, float64(1), rec.Results[0].ScenarioID)
	assert.Equal(t, float64(2), rec.Results[1].ScenarioID)

	t.Run("entry defaults", func(t *testing.T) {
		rec := SanitizeProgress(map[string]any{
			"results": []any{map[string]any{}},
		})
		require.NotNil(t, rec)
		require.Len(t, rec.Results, 1)
		entry := rec.Results[0]
		assert.Equal(t, float64(0), entry.ScenarioID)
		assert.Equal(t, float64(0), entry.Invested)
		assert.Equal(t, float64(0), entry.Profit)
		assert.False(t, entry.HintUsed)
		assert.Equal(t, models.DifficultyEasy, entry.Difficulty)
		assert.NotEmpty(t, entry.Timestamp)
		assert.Equal(t, float64(models.DefaultAllocationPercent), entry.AllocationPercent)
	})

	t.Run("entry fields kept", func(t *testing.T) {
		rec := SanitizeProgress(map[string]any{
			"results": []any{map[string]any{
				"invested":          float64(500),
				"profit":            float64(-50),
				"hintUsed":          true,
				"difficulty":        "normal",
				"timestamp":         "2026-01-02T03:04:05Z",
				"allocationPercent": float64(75),
			}},
		})
		require.NotNil(t, rec)
		require.Len(t, rec.Results, 1)
		entry := rec.Results[0]
		assert.Equal(t, float64(500), entry.Invested)
		assert.Equal(t, float64(-50), entry.Profit)
		assert.True(t, entry.HintUsed)
		assert.Equal(t, models.DifficultyNormal, entry.Difficulty)
		assert.Equal(t, "2026-01-02T03:04:05Z", entry.Timestamp)
		assert.Equal(t, float64(75), entry.AllocationPercent)
	})

	t.Run("truncated to 600 surviving entries", func(t *testing.T) {
		items := make([]any, 700)
		for i := range items {
			items[i] = map[string]any{"scenarioId": float64(i)}
		}
		rec := SanitizeProgress(map[string]any{"results": items})
		require.NotNil(t, rec)
		assert.Len(t, rec.Results, models.MaxResults)
		assert.Equal(t, float64(0), rec.Results[0].ScenarioID)
		assert.Equal(t, float64(models.MaxResults-1), rec.Results[models.MaxResults-1].ScenarioID)
	})

	t.Run("not an array", func(t *testing.T) {
		rec := SanitizeProgress(map[string]any{"results": map[string]any{}})
		require.NotNil(t, rec)
		assert.Equal(t, []models.ResultEntry{}, rec.Results)
	})
}

func TestSanitizeProgress_Truthiness(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"true", true, true},
		{"false", false, false},
		{"nonzero number", float64(1), true},
		{"zero number", float64(0), false},
		{"nonempty string", "yes", true},
		{"empty string", "", false},
		{"object", map[string]any{}, true},
		{"missing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := SanitizeProgress(map[string]any{"onboarded": tt.input})
			require.NotNil(t, rec)
			assert.Equal(t, tt.want, rec.Onboarded)
		})
	}
}

func TestSanitizeProgress_UpdatedAtIsServerTime(t *testing.T) {
	rec := SanitizeProgress(map[string]any{"updatedAt": "1999-01-01T00:00:00Z"})
	require.NotNil(t, rec)
	assert.NotEqual(t, "1999-01-01T00:00:00Z", rec.UpdatedAt)
}

// Sanitizing a sanitized record again must change nothing except the
// timestamps.
func TestSanitizeProgress_Idempotent(t *testing.T) {
	first := SanitizeProgress(map[string]any{
		"playerName":         "  kid ",
		"cash":               float64(2500),
		"rewardPoints":       float64(30),
		"onboarded":          float64(1),
		"selectedDifficulty": "hard",
		"ownedItemIds":       []any{"a", float64(1), "b"},
		"results": []any{
			map[string]any{"scenarioId": float64(3), "difficulty": "normal"},
			"junk",
		},
	})
	require.NotNil(t, first)

	// Round-trip through JSON the way a client resubmits its own state.
	raw, err := json.Marshal(first)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	second := SanitizeProgress(decoded)
	require.NotNil(t, second)

	// Timestamps advance; everything else must be a fixpoint.
	second.UpdatedAt = first.UpdatedAt
	assert.Equal(t, first, second)
}
