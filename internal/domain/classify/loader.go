package classify

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile reads company -> level overrides from a YAML file:
//
//	companies:
//	  some studio: AGGRESSIVE
//	  another studio: MOD_FRIENDLY
//
// Unknown level strings are rejected so a typo cannot silently relax
// enforcement.
func LoadFile(path string) (map[string]Level, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTable, err)
	}

	raw := k.StringMap("companies")
	companies := make(map[string]Level, len(raw))
	for name, level := range raw {
		parsed, err := ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: company %q: %w", ErrLoadTable, name, err)
		}
		companies[name] = parsed
	}
	return companies, nil
}

// ParseLevel converts a string to an enforcement Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelPermissive, LevelModFriendly, LevelAggressive, LevelBlockAll:
		return Level(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
