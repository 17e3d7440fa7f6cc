package validation

import (
	"math"
	"strings"
	"time"

	"github.com/kid-econ/progress-server/internal/models"
)

// SanitizeProgress normalizes an arbitrary decoded JSON value into a fully
// typed progress record. It returns nil only when the input is not a JSON
// object; every field inside an object is defaulted independently, so a
// single bad field never rejects the record. Applying it to its own output
// is a fixpoint except for the timestamps, which always advance.
func SanitizeProgress(raw any) *models.ProgressRecord {
	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return &models.ProgressRecord{
		PlayerName:         playerName(obj["playerName"]),
		Cash:               numberOr(obj["cash"], models.DefaultCash),
		RewardPoints:       numberOr(obj["rewardPoints"], 0),
		CurrentScenario:    numberOr(obj["currentScenario"], 0),
		Results:            sanitizeResults(obj["results"], now),
		BestStreak:         numberOr(obj["bestStreak"], 0),
		Onboarded:          truthy(obj["onboarded"]),
		SelectedDifficulty: difficultyOr(obj["selectedDifficulty"], models.DifficultyEasy),
		LearnerAgeBand:     ageBandOr(obj["learnerAgeBand"]),
		OwnedItemIDs:       stringSlice(obj["ownedItemIds"], models.MaxOwnedItems),
		EquippedCharacter:  stringOr(obj["equippedCharacterId"], models.DefaultCharacterID),
		EquippedHome:       stringOr(obj["equippedHomeId"], models.DefaultHomeID),
		TotalPointsSpent:   numberOr(obj["totalPointsSpent"], 0),
		UpdatedAt:          now,
	}
}

// sanitizeResults maps each object element to a fully defaulted entry and
// drops everything else. The surviving entries keep their order and are
// truncated to the first MaxResults.
func sanitizeResults(raw any, now string) []models.ResultEntry {
	items, ok := raw.([]any)
	if !ok {
		return []models.ResultEntry{}
	}

	out := make([]models.ResultEntry, 0, min(len(items), models.MaxResults))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok || entry == nil {
			continue
		}
		out = append(out, models.ResultEntry{
			ScenarioID:          numberOr(entry["scenarioId"], 0),
			Invested:            numberOr(entry["invested"], 0),
			Profit:              numberOr(entry["profit"], 0),
			ReturnPercent:       numberOr(entry["returnPercent"], 0),
			JudgementScore:      numberOr(entry["judgementScore"], 0),
			RiskManagementScore: numberOr(entry["riskManagementScore"], 0),
			EmotionControlScore: numberOr(entry["emotionControlScore"], 0),
			HintUsed:            truthy(entry["hintUsed"]),
			Difficulty:          difficultyOr(entry["difficulty"], models.DifficultyEasy),
			Timestamp:           stringOr(entry["timestamp"], now),
			AllocationPercent:   numberOr(entry["allocationPercent"], models.DefaultAllocationPercent),
		})
		if len(out) == models.MaxResults {
			break
		}
	}
	return out
}

// numberOr accepts only finite JSON numbers. Numeric-looking strings are
// not coerced.
func numberOr(v any, fallback float64) float64 {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

func stringOr(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// playerName trims the input and truncates it to MaxPlayerNameLen runes.
// Non-strings and names that are empty after trimming fall to the default.
func playerName(v any) string {
	s, ok := v.(string)
	if !ok {
		return models.DefaultPlayerName
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return models.DefaultPlayerName
	}
	if runes := []rune(s); len(runes) > models.MaxPlayerNameLen {
		return string(runes[:models.MaxPlayerNameLen])
	}
	return s
}

// difficultyOr accepts only an exact enum match; wrong case falls through.
func difficultyOr(v any, fallback string) string {
	switch v {
	case models.DifficultyEasy, models.DifficultyNormal, models.DifficultyHard:
		return v.(string)
	}
	return fallback
}

func ageBandOr(v any) string {
	switch v {
	case models.AgeBandYounger, models.AgeBandMiddle, models.AgeBandOlder:
		return v.(string)
	}
	return models.AgeBandMiddle
}

// stringSlice filters the input to string elements, preserving order,
// truncated to limit. Anything that is not an array yields an empty slice.
func stringSlice(v any, limit int) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, min(len(items), limit))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// truthy mirrors JavaScript boolean coercion over decoded JSON values:
// null, false, 0, NaN and "" are false, everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}
