package classify

// builtinCompanies is the curated enforcement table shipped with the engine.
// Several variants of the same rights holder map to the same level; matching
// is substring-based so subsidiary studio names ("Nintendo R&D4", "Nintendo
// EPD") resolve through their parent's entry.
//
// Levels reflect publicly observable takedown behavior, reviewed manually.
// Companies absent from this table default to PERMISSIVE.
var builtinCompanies = map[string]Level{
	// Block-all: fan works are removed on sight, commentary included.
	"nintendo":            LevelBlockAll,
	"the pokemon company": LevelBlockAll,
	"game freak":          LevelBlockAll,
	"disney":              LevelBlockAll,
	"lucasfilm":           LevelBlockAll,
	"games workshop":      LevelBlockAll,

	// Aggressive: routine DMCA enforcement against fan games and mods.
	"take-two":             LevelAggressive,
	"take two interactive": LevelAggressive,
	"rockstar":             LevelAggressive,
	"2k games":             LevelAggressive,
	"square enix":          LevelAggressive,
	"konami":               LevelAggressive,
	"capcom":               LevelAggressive,
	"atlus":                LevelAggressive,
	"king.com":             LevelAggressive,

	// Mod-friendly: derivative work tolerated or actively supported.
	"bethesda":  LevelModFriendly,
	"zenimax":   LevelModFriendly,
	"paradox":   LevelModFriendly,
	"mojang":    LevelModFriendly,
	"re-logic":  LevelModFriendly,
	"facepunch": LevelModFriendly,
	"sega":      LevelModFriendly,
	"larian":    LevelModFriendly,
	"firaxis":   LevelModFriendly,

	// Permissive: explicit blessing of community content.
	"valve":         LevelPermissive,
	"cd projekt":    LevelPermissive,
	"id software":   LevelPermissive,
	"concerned ape": LevelPermissive,
	"team cherry":   LevelPermissive,
}
