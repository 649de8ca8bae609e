package source

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/ludex/internal/domain/model"
)

// Fixture is an in-memory Supplier over a fixed catalog. The binary uses
// it for local-store duty until a real store adapter is wired in, and
// tests use it as a deterministic source.
type Fixture struct {
	name    string
	records []model.Record
}

// NewFixture creates a fixture supplier. Records without a local id get a
// generated one so identity-based deduplication works.
func NewFixture(name string, records []model.Record) *Fixture {
	out := make([]model.Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].LocalID == "" && out[i].ProviderID == "" {
			out[i].LocalID = uuid.NewString()
		}
	}
	return &Fixture{name: name, records: out}
}

// Name implements Supplier.
func (f *Fixture) Name() string {
	return f.name
}

// Search implements Supplier with case-insensitive substring matching over
// name, summary, and genre labels.
func (f *Fixture) Search(ctx context.Context, query string) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	var hits []model.Record
	for _, rec := range f.records {
		if matchesQuery(rec, q) {
			hits = append(hits, rec)
		}
	}
	return hits, nil
}

func matchesQuery(rec model.Record, q string) bool {
	if strings.Contains(strings.ToLower(rec.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Summary), q) {
		return true
	}
	for _, g := range rec.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

// SampleCatalog returns a small, varied catalog for local development:
// flagship and famous titles, series entries, add-ons, and community-made
// derivatives.
func SampleCatalog() []model.Record {
	date := func(y, m, d int) time.Time {
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}
	return []model.Record{
		{
			ProviderID: "1020",
			Name:       "The Legend of Zelda: Breath of the Wild",
			Summary:    "Open-air adventure across the kingdom of Hyrule.",
			ReleaseAt:  date(2017, 3, 3),
			Genres:     []string{"Adventure", "RPG"},
			Platforms:  []string{"Switch", "Wii U"},
			Developer:  "Nintendo EPD",
			Publisher:  "Nintendo",
			Category:   model.CategoryMainGame,
			Rating:     97, RatingCount: 3200, Follows: 900,
		},
		{
			ProviderID: "1074",
			Name:       "Super Mario Odyssey",
			Summary:    "Globe-trotting 3D platformer starring Mario and Cappy.",
			ReleaseAt:  date(2017, 10, 27),
			Genres:     []string{"Platformer"},
			Platforms:  []string{"Switch"},
			Developer:  "Nintendo EPD",
			Publisher:  "Nintendo",
			Category:   model.CategoryMainGame,
			Rating:     97, RatingCount: 2800, Follows: 750,
		},
		{
			ProviderID: "2155",
			Name:       "The Witcher 3: Wild Hunt",
			Summary:    "Story-driven open world RPG set in a dark fantasy universe.",
			ReleaseAt:  date(2015, 5, 19),
			Genres:     []string{"RPG"},
			Platforms:  []string{"PC", "PlayStation 5", "Xbox Series", "Switch"},
			Developer:  "CD Projekt Red",
			Publisher:  "CD Projekt",
			Category:   model.CategoryMainGame,
			Rating:     94, RatingCount: 4100, Follows: 1200,
		},
		{
			ProviderID: "3090",
			Name:       "Mario Kart 8 Deluxe",
			Summary:    "Kart racing with every track and fighter from the Wii U release.",
			ReleaseAt:  date(2017, 4, 28),
			Genres:     []string{"Racing"},
			Platforms:  []string{"Switch"},
			Developer:  "Nintendo EPD",
			Publisher:  "Nintendo",
			Category:   model.CategoryMainGame,
			Rating:     92, RatingCount: 1900,
		},
		{
			ProviderID: "4411",
			Name:       "The Witcher 3: Wild Hunt - Blood and Wine",
			Summary:    "Final expansion set in the wine country of Toussaint.",
			ReleaseAt:  date(2016, 5, 31),
			Genres:     []string{"RPG"},
			Platforms:  []string{"PC", "PlayStation 4", "Xbox One"},
			Developer:  "CD Projekt Red",
			Publisher:  "CD Projekt",
			Category:   model.CategoryExpansion,
			Rating:     92, RatingCount: 800,
		},
		{
			ProviderID: "5530",
			Name:       "Skyblivion",
			Summary:    "Volunteer-built recreation of Oblivion in the Skyrim engine.",
			Genres:     []string{"RPG"},
			Platforms:  []string{"PC"},
			Developer:  "TESRenewal Community",
			Category:   model.CategoryMod,
			Follows:    300,
		},
		{
			ProviderID: "6674",
			Name:       "Super Mario 64 Plus",
			Summary:    "Community fork of the Super Mario 64 PC port with new movement options.",
			Genres:     []string{"Platformer"},
			Platforms:  []string{"PC"},
			Developer:  "Fan Port Team",
			Category:   model.CategoryFork,
		},
		{
			ProviderID: "7080",
			Name:       "Stardew Valley",
			Summary:    "Farming life sim with townsfolk, caves, and seasons.",
			ReleaseAt:  date(2016, 2, 26),
			Genres:     []string{"Simulation", "RPG"},
			Platforms:  []string{"PC", "Switch", "PlayStation 4", "Xbox One"},
			Developer:  "ConcernedApe",
			Publisher:  "ConcernedApe",
			Category:   model.CategoryMainGame,
			Rating:     89, RatingCount: 2600, Follows: 640,
		},
	}
}
