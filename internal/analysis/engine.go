package analysis

import (
	"sort"
	"strings"
)

// AdvisoryNote is attached to every sensitivity result.
const AdvisoryNote = "Check ingredient labels against your personal sensitivities and skin type."

// undertoneRule pairs a predicate with its outcome. Rules are evaluated in
// order and the first match wins, so priority lives in the slice order, not
// in nested conditionals.
type undertoneRule struct {
	name  string
	apply func(in PersonalColorInput) (Undertone, bool)
}

var undertoneRules = []undertoneRule{
	{
		name: "explicit hint",
		apply: func(in PersonalColorInput) (Undertone, bool) {
			switch in.UndertoneHint {
			case UndertoneCool, UndertoneWarm, UndertoneNeutral:
				return in.UndertoneHint, true
			}
			return "", false
		},
	},
	{
		name: "vein color",
		apply: func(in PersonalColorInput) (Undertone, bool) {
			switch in.VeinColor {
			case VeinBlue:
				return UndertoneCool, true
			case VeinGreen:
				return UndertoneWarm, true
			}
			return "", false
		},
	},
	{
		name: "jewelry preference",
		apply: func(in PersonalColorInput) (Undertone, bool) {
			switch in.JewelryPreference {
			case JewelrySilver:
				return UndertoneCool, true
			case JewelryGold:
				return UndertoneWarm, true
			}
			return "", false
		},
	},
}

// InferUndertone runs the priority-ordered rule chain. Inputs that match no
// rule default to neutral.
func InferUndertone(in PersonalColorInput) Undertone {
	for _, rule := range undertoneRules {
		if u, ok := rule.apply(in); ok {
			return u
		}
	}
	return UndertoneNeutral
}

// SeasonFor derives the color season from undertone and skin tone. An unset
// skin tone matches no listed tone and falls to the deeper-tone branch.
func SeasonFor(undertone Undertone, tone SkinTone) Season {
	switch undertone {
	case UndertoneCool:
		if tone == SkinToneFair || tone == SkinToneLight {
			return SeasonSummer
		}
		return SeasonWinter
	case UndertoneWarm:
		if tone == SkinToneFair || tone == SkinToneLight || tone == SkinToneMedium {
			return SeasonSpring
		}
		return SeasonAutumn
	default:
		if tone == SkinToneFair || tone == SkinToneLight {
			return SeasonSpring
		}
		return SeasonAutumn
	}
}

// seasonPalettes is process-wide constant data; Palette hands out copies so
// the table itself is never mutated.
var seasonPalettes = map[Season][]string{
	SeasonSpring: {"peach", "coral", "warm beige", "light olive", "mint"},
	SeasonSummer: {"cool pink", "lavender", "soft blue", "rose", "mauve"},
	SeasonAutumn: {"terracotta", "olive", "mustard", "warm brown", "teal"},
	SeasonWinter: {"true red", "black", "white", "emerald", "cobalt"},
}

// Palette returns the ordered color list for a season. Unknown seasons get a
// single-element neutral fallback.
func Palette(season Season) []string {
	p, ok := seasonPalettes[season]
	if !ok {
		return []string{"neutral"}
	}
	return append([]string(nil), p...)
}

// ComputePersonalColor infers undertone, season and palette. It is total:
// every input, including the zero value, produces a fully populated result.
func ComputePersonalColor(in PersonalColorInput) PersonalColorResult {
	undertone := InferUndertone(in)
	season := SeasonFor(undertone, in.SkinTone)
	return PersonalColorResult{
		Undertone: undertone,
		Season:    season,
		Palette:   Palette(season),
	}
}

// ComputeSensitivity evaluates each sensitivity condition independently and
// accumulates flags and ingredients to avoid. It is total and never fails.
func ComputeSensitivity(in SensitivityInput) SensitivityResult {
	reactions := make(map[string]bool, len(in.IngredientsReactions))
	for _, r := range in.IngredientsReactions {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			reactions[r] = true
		}
	}

	flags := []string{}
	flagged := make(map[string]bool)
	avoidSet := make(map[string]bool)

	flag := func(name string) {
		if !flagged[name] {
			flagged[name] = true
			flags = append(flags, name)
		}
	}
	avoid := func(names ...string) {
		for _, n := range names {
			avoidSet[n] = true
		}
	}

	if in.FragranceSensitive || reactions["fragrance"] {
		flag("fragrance_sensitive")
		avoid("fragrance")
	}
	if in.AcneProne || reactions["pore clogging"] {
		flag("acne_prone")
		avoid("heavy oils", "isopropyl myristate")
	}

	switch in.SkinType {
	case SkinTypeDry:
		flag("dry_skin")
		avoid("high alcohol")
	case SkinTypeOily:
		flag("oily_skin")
		avoid("heavy occlusives")
	case SkinTypeSensitive:
		flag("sensitive_skin")
		avoid("strong AHA/BHA", "retinoid (high)")
	}

	// Reaction-driven avoids are independent of the skin-type-driven ones.
	if reactions["alcohol"] {
		avoid("alcohol")
	}
	if reactions["aha"] {
		avoid("strong AHA")
	}

	avoidList := make([]string, 0, len(avoidSet))
	for n := range avoidSet {
		avoidList = append(avoidList, n)
	}
	sort.Strings(avoidList)

	return SensitivityResult{
		Flags:            flags,
		AvoidIngredients: avoidList,
		Notes:            AdvisoryNote,
	}
}

// ComputeComprehensive runs the sub-analyses whose input blocks are present
// and builds the recommendation map from the computed sub-results. A missing
// block leaves both the sub-result and its recommendation key absent.
func ComputeComprehensive(in ComprehensiveInput) ComprehensiveResult {
	res := ComprehensiveResult{
		UserID:          in.UserID,
		Recommendations: map[string]any{},
	}

	if in.Personal != nil {
		personal := ComputePersonalColor(*in.Personal)
		res.Personal = &personal
		res.Recommendations["palette"] = personal.Palette
	}
	if in.Sensitivity != nil {
		sensitivity := ComputeSensitivity(*in.Sensitivity)
		res.Sensitivity = &sensitivity
		res.Recommendations["avoid"] = sensitivity.AvoidIngredients
	}

	return res
}
