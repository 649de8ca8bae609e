package scoring

// Curated title and company lookups backing tier assignment. Names are
// stored normalized (lowercase, trimmed); see classify.Normalize.

// iconicTitles are the handful of titles that anchor the top of any search:
// exact-name matches land in the FLAGSHIP tier.
var iconicTitles = newTitleSet(
	"minecraft",
	"tetris",
	"grand theft auto v",
	"the witcher 3: wild hunt",
	"red dead redemption 2",
	"the legend of zelda: breath of the wild",
	"the legend of zelda: tears of the kingdom",
	"elden ring",
	"the elder scrolls v: skyrim",
	"half-life 2",
	"portal 2",
	"doom",
	"fortnite",
	"world of warcraft",
	"baldur's gate 3",
)

// famousTitles land in the FAMOUS tier on an exact-name match.
var famousTitles = newTitleSet(
	"super mario odyssey",
	"super mario galaxy",
	"super smash bros. ultimate",
	"animal crossing: new horizons",
	"god of war",
	"the last of us",
	"horizon zero dawn",
	"bloodborne",
	"sekiro: shadows die twice",
	"dark souls iii",
	"hollow knight",
	"stardew valley",
	"celeste",
	"hades",
	"undertale",
	"cyberpunk 2077",
	"persona 5 royal",
	"final fantasy vii remake",
	"metal gear solid v: the phantom pain",
	"resident evil 4",
	"disco elysium",
	"outer wilds",
)

func newTitleSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// franchises lists known series; a record whose name contains one of these
// markers is assigned the SEQUEL_OR_SERIES tier when no earlier rule fired.
var franchises = []string{
	"mario",
	"zelda",
	"pokemon",
	"pokémon",
	"metroid",
	"kirby",
	"splatoon",
	"fire emblem",
	"animal crossing",
	"final fantasy",
	"dragon quest",
	"kingdom hearts",
	"call of duty",
	"battlefield",
	"assassin's creed",
	"far cry",
	"halo",
	"gears of war",
	"forza",
	"grand theft auto",
	"red dead",
	"the witcher",
	"dark souls",
	"resident evil",
	"monster hunter",
	"street fighter",
	"mortal kombat",
	"tekken",
	"metal gear",
	"silent hill",
	"castlevania",
	"mega man",
	"sonic the hedgehog",
	"persona",
	"yakuza",
	"tomb raider",
	"hitman",
	"wolfenstein",
	"borderlands",
	"bioshock",
	"fallout",
	"elder scrolls",
	"mass effect",
	"dragon age",
	"civilization",
	"total war",
	"starcraft",
	"warcraft",
	"diablo",
	"overwatch",
	"destiny",
	"uncharted",
	"god of war",
	"the last of us",
	"gran turismo",
	"ratchet & clank",
}

// majorCompanies is the publisher/developer set that lifts an otherwise
// unclassified record into the MAIN tier, and exempts a company from the
// fan-name heuristic. Short generic substrings are deliberately avoided.
var majorCompanies = []string{
	"nintendo",
	"sony interactive",
	"playstation studios",
	"microsoft",
	"xbox game studios",
	"electronic arts",
	"ea sports",
	"activision",
	"blizzard",
	"ubisoft",
	"take-two",
	"rockstar",
	"2k games",
	"square enix",
	"sega",
	"capcom",
	"konami",
	"bandai namco",
	"bethesda",
	"valve",
	"cd projekt",
	"epic games",
	"tencent",
	"thq nordic",
	"devolver digital",
	"annapurna",
	"focus entertainment",
	"paradox interactive",
	"koei tecmo",
	"atlus",
	"fromsoftware",
	"naughty dog",
	"insomniac",
	"bungie",
	"respawn",
	"larian",
	"riot games",
	"warner bros",
	"505 games",
	"team17",
}

// fanMarkers flag developer/publisher names that look community-authored.
// Inherently fuzzy; the classifier table and majorCompanies are
// authoritative when both signals conflict.
var fanMarkers = []string{
	"fan",
	"homebrew",
	"community",
	"mod team",
	"modding",
	"rom hack",
	"romhack",
	"unofficial",
}

// firstPartyPlatforms maps a first-party company marker to its home
// platform marker; a title from that company on that platform gets the full
// platform sub-score.
var firstPartyPlatforms = map[string]string{
	"nintendo":            "switch",
	"sony interactive":    "playstation",
	"playstation studios": "playstation",
	"microsoft":           "xbox",
	"xbox game studios":   "xbox",
}

// currentGenPlatforms and legacyPlatforms grade third-party availability.
var currentGenPlatforms = []string{
	"playstation 5",
	"xbox series",
	"switch",
	"pc",
	"windows",
	"steam",
}

var legacyPlatforms = []string{
	"playstation 4",
	"playstation 3",
	"xbox one",
	"xbox 360",
	"wii u",
	"nintendo 3ds",
}

// withdrawnPlatforms mark dead or never-confirmed targets; a record known
// only on these is penalized.
var withdrawnPlatforms = []string{
	"stadia",
	"ouya",
	"playstation vita",
	"rumored",
}
