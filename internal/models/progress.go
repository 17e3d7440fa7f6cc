package models

// Difficulty levels a player can select.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// Age bands used to tune scenario wording for younger players.
const (
	AgeBandYounger = "younger"
	AgeBandMiddle  = "middle"
	AgeBandOlder   = "older"
)

// Defaults applied by the progress sanitizer.
const (
	DefaultPlayerName  = "탐험대원"
	DefaultCash        = 1000
	DefaultCharacterID = "char_default"
	DefaultHomeID      = "home_base_default"

	MaxPlayerNameLen = 24
	MaxResults       = 600
	MaxOwnedItems    = 300

	DefaultAllocationPercent = 50
)

// ResultEntry is the outcome of a single played scenario.
type ResultEntry struct {
	ScenarioID          float64 `json:"scenarioId"`
	Invested            float64 `json:"invested"`
	Profit              float64 `json:"profit"`
	ReturnPercent       float64 `json:"returnPercent"`
	JudgementScore      float64 `json:"judgementScore"`
	RiskManagementScore float64 `json:"riskManagementScore"`
	EmotionControlScore float64 `json:"emotionControlScore"`
	HintUsed            bool    `json:"hintUsed"`
	Difficulty          string  `json:"difficulty"`
	Timestamp           string  `json:"timestamp"`
	AllocationPercent   float64 `json:"allocationPercent"`
}

// ProgressRecord is the full per-user game state document.
// Every field is guaranteed present and well-typed after sanitization.
type ProgressRecord struct {
	PlayerName         string        `json:"playerName"`
	Cash               float64       `json:"cash"`
	RewardPoints       float64       `json:"rewardPoints"`
	CurrentScenario    float64       `json:"currentScenario"`
	Results            []ResultEntry `json:"results"`
	BestStreak         float64       `json:"bestStreak"`
	Onboarded          bool          `json:"onboarded"`
	SelectedDifficulty string        `json:"selectedDifficulty"`
	LearnerAgeBand     string        `json:"learnerAgeBand"`
	OwnedItemIDs       []string      `json:"ownedItemIds"`
	EquippedCharacter  string        `json:"equippedCharacterId"`
	EquippedHome       string        `json:"equippedHomeId"`
	TotalPointsSpent   float64       `json:"totalPointsSpent"`
	UpdatedAt          string        `json:"updatedAt"`
}
