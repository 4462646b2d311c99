package tui

import "strings"

// Badge is the visual class of a strain type.
type Badge int

const (
	BadgeHybrid Badge = iota
	BadgeSativa
	BadgeIndica
)

// BadgeFor classifies a free-form type. Unknown and empty types are hybrid.
func BadgeFor(strainType string) Badge {
	switch strings.ToLower(strings.TrimSpace(strainType)) {
	case "sativa":
		return BadgeSativa
	case "indica":
		return BadgeIndica
	default:
		return BadgeHybrid
	}
}

func (b Badge) String() string {
	switch b {
	case BadgeSativa:
		return "sativa"
	case BadgeIndica:
		return "indica"
	default:
		return "hybrid"
	}
}

// badgeLabel is the text printed inside a badge: the record's own type, or
// the class name when the type is blank.
func badgeLabel(strainType string) string {
	if t := strings.TrimSpace(strainType); t != "" {
		return t
	}
	return BadgeFor(strainType).String()
}
