package domain

import "strings"

// Probability is the likelihood of triggering an avalanche problem.
type Probability string

const (
	ProbabilityUnlikely   Probability = "Osannolikt"
	ProbabilityPossible   Probability = "Möjligt"
	ProbabilityLikely     Probability = "Troligt"
	ProbabilityVeryLikely Probability = "Mycket troligt"
	ProbabilityCertain    Probability = "Utan tvivel"
)

// Size is the expected destructive size of an avalanche problem.
type Size string

const (
	SizeSmall     Size = "Små"
	SizeLarge     Size = "Stora"
	SizeVeryLarge Size = "Mycket stora"
)

// Direction is one of the eight compass aspects, abbreviated in Swedish.
type Direction string

const (
	DirectionNorth     Direction = "N"
	DirectionNorthEast Direction = "NO"
	DirectionEast      Direction = "O"
	DirectionSouthEast Direction = "SO"
	DirectionSouth     Direction = "S"
	DirectionSouthWest Direction = "SV"
	DirectionWest      Direction = "V"
	DirectionNorthWest Direction = "NV"
)

// AltitudeBand is an elevation band of the altitude diagram.
type AltitudeBand string

const (
	AltitudeAlpine        AltitudeBand = "kalfjäll"
	AltitudeTreeline      AltitudeBand = "trädgräns"
	AltitudeBelowTreeline AltitudeBand = "under trädgränsen"
)

// Gauge needle rotations about the pivot (143, 104).
const (
	rotate5   = "rotate(5 143 104)"
	rotate40  = "rotate(40 143 104)"
	rotate85  = "rotate(85 143 104)"
	rotate130 = "rotate(130 143 104)"
	rotate165 = "rotate(165 143 104)"
)

var probabilityByRotation = map[string]Probability{
	rotate5:   ProbabilityUnlikely,
	rotate40:  ProbabilityPossible,
	rotate85:  ProbabilityLikely,
	rotate130: ProbabilityVeryLikely,
	rotate165: ProbabilityCertain,
}

var sizeByRotation = map[string]Size{
	rotate5:   SizeSmall,
	rotate85:  SizeLarge,
	rotate165: SizeVeryLarge,
}

var directionByPoints = map[string]Direction{
	"108.6,110.9 82.5,48.4 109.3,30.8 134.3,48.7":    DirectionNorth,
	"111.4,111.7 137.1,49.8 167.7,54.8 172.2,86.5":   DirectionNorthEast,
	"112.5,114.6 173.7,89.1 191.6,115.3 174.7,141":   DirectionEast,
	"111.3,117.3 174.1,144 168.2,173.6 137.3,179.8":  DirectionSouthEast,
	"108.6,118.7 134.7,181.3 108.5,198.8 82.7,181.1": DirectionSouth,
	"105.9,117.3 80,179.7 48.6,174.8 43,143.5":       DirectionSouthWest,
	"104.7,114.5 41.7,140.7 24.5,114.9 42.8,88.2":    DirectionWest,
	"49.9,55 43.5,85.2 105.6,111.6 79.6,49.2":        DirectionNorthWest,
}

var altitudeByPoints = map[string]AltitudeBand{
	"102.6,8.2 152.7,93.6 120,100 52.4,94":                     AltitudeAlpine,
	"29,138 52.4,93.6 124,100 152.7,93 176,134 125,144":        AltitudeTreeline,
	"6.5,182.2 29,138 125,144 176,134 194.1,173.2 135.6,189.8": AltitudeBelowTreeline,
}

// DecodeProbability maps a probability needle transform to its label.
func DecodeProbability(transform string) (Probability, bool) {
	p, ok := probabilityByRotation[rotation(transform)]
	return p, ok
}

// DecodeSize maps a size needle transform to its label. The size gauge shares
// the probability gauge's rotations but only uses three of them.
func DecodeSize(transform string) (Size, bool) {
	s, ok := sizeByRotation[rotation(transform)]
	return s, ok
}

// DecodeDirection maps a compass rose polygon to its aspect.
func DecodeDirection(points string) (Direction, bool) {
	d, ok := directionByPoints[normalizePoints(points)]
	return d, ok
}

// DecodeAltitude maps an altitude diagram polygon to its band.
func DecodeAltitude(points string) (AltitudeBand, bool) {
	a, ok := altitudeByPoints[normalizePoints(points)]
	return a, ok
}

// rotation returns the rotate(...) component of an SVG transform list, or ""
// when there is none.
func rotation(transform string) string {
	start := strings.Index(transform, "rotate(")
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(transform[start:], ')')
	if end < 0 {
		return ""
	}
	return transform[start : start+end+1]
}

func normalizePoints(points string) string {
	return strings.Join(strings.Fields(points), " ")
}
