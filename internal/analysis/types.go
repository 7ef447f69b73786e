// Package analysis implements the rule-based skin profile analysis engine.
// All entry points are pure functions: deterministic output from deterministic
// input, no I/O, safe for unlimited concurrent use.
package analysis

// Undertone classifies the skin's underlying color cast.
type Undertone string

// Undertone values.
const (
	UndertoneCool    Undertone = "cool"
	UndertoneWarm    Undertone = "warm"
	UndertoneNeutral Undertone = "neutral"
)

// Season is a color-analysis palette category.
type Season string

// Season values.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// SkinTone describes overall skin depth.
type SkinTone string

// SkinTone values.
const (
	SkinToneFair   SkinTone = "fair"
	SkinToneLight  SkinTone = "light"
	SkinToneMedium SkinTone = "medium"
	SkinToneTan    SkinTone = "tan"
	SkinToneDeep   SkinTone = "deep"
)

// VeinColor is the apparent color of wrist veins.
type VeinColor string

// VeinColor values.
const (
	VeinBlue  VeinColor = "blue"
	VeinGreen VeinColor = "green"
	VeinMixed VeinColor = "mixed"
)

// JewelryPreference is the metal tone the user prefers to wear.
type JewelryPreference string

// JewelryPreference values.
const (
	JewelrySilver JewelryPreference = "silver"
	JewelryGold   JewelryPreference = "gold"
	JewelryBoth   JewelryPreference = "both"
)

// SkinType is the self-reported skin type.
type SkinType string

// SkinType values.
const (
	SkinTypeDry         SkinType = "dry"
	SkinTypeOily        SkinType = "oily"
	SkinTypeCombination SkinType = "combination"
	SkinTypeSensitive   SkinType = "sensitive"
	SkinTypeNormal      SkinType = "normal"
)

// PersonalColorInput holds the observations used to infer undertone and
// season. Every field is optional; the zero value ("") means "not provided"
// and falls through to the default branch of each rule.
type PersonalColorInput struct {
	SkinTone          SkinTone
	VeinColor         VeinColor
	JewelryPreference JewelryPreference
	UndertoneHint     Undertone
}

// PersonalColorResult is the outcome of a personal color analysis.
// All fields are always populated.
type PersonalColorResult struct {
	Undertone Undertone `json:"undertone"`
	Season    Season    `json:"season"`
	Palette   []string  `json:"palette"`
}

// SensitivityInput holds the observations used to flag ingredient
// sensitivities. IngredientsReactions entries are matched case-insensitively
// and their order does not matter.
type SensitivityInput struct {
	SkinType             SkinType
	IngredientsReactions []string
	FragranceSensitive   bool
	AcneProne            bool
}

// SensitivityResult is the outcome of a sensitivity analysis. Flags keep
// first-encounter order; AvoidIngredients is deduplicated and sorted.
type SensitivityResult struct {
	Flags            []string `json:"flags"`
	AvoidIngredients []string `json:"avoid_ingredients"`
	Notes            string   `json:"notes"`
}

// ComprehensiveInput selects which sub-analyses to run. A nil block skips
// that analysis entirely; a present-but-empty block runs it with defaults.
type ComprehensiveInput struct {
	UserID      string
	Personal    *PersonalColorInput
	Sensitivity *SensitivityInput
}

// ComprehensiveResult combines the sub-results that were computed.
// Recommendations carries a "palette" key only when the personal analysis
// ran and an "avoid" key only when the sensitivity analysis ran.
type ComprehensiveResult struct {
	UserID          string               `json:"user_id,omitempty"`
	Personal        *PersonalColorResult `json:"personal,omitempty"`
	Sensitivity     *SensitivityResult   `json:"sensitivity,omitempty"`
	Recommendations map[string]any       `json:"recommendations"`
}
