package model

// JewelKind is one color from the palette, or Empty
type JewelKind int

const (
	Empty JewelKind = iota
	Red
	Orange
	Yellow
	Green
	Blue
	Indigo
	Violet
)

// MatchThreshold is the minimum group size that counts as a match
const MatchThreshold = 3

var jewelNames = map[JewelKind]string{
	Empty:  "Empty",
	Red:    "Red",
	Orange: "Orange",
	Yellow: "Yellow",
	Green:  "Green",
	Blue:   "Blue",
	Indigo: "Indigo",
	Violet: "Violet",
}

var jewelCodes = map[JewelKind]rune{
	Empty:  '.',
	Red:    'R',
	Orange: 'O',
	Yellow: 'Y',
	Green:  'G',
	Blue:   'B',
	Indigo: 'I',
	Violet: 'V',
}

// String returns the display name of the kind
func (k JewelKind) String() string {
	if name, ok := jewelNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Code returns the single-letter code used in text boards
func (k JewelKind) Code() rune {
	if code, ok := jewelCodes[k]; ok {
		return code
	}
	return '?'
}

// IsEmpty returns true for the Empty sentinel
func (k JewelKind) IsEmpty() bool {
	return k == Empty
}

// JewelKindFromCode parses a single-letter code (case-insensitive)
func JewelKindFromCode(code rune) (JewelKind, bool) {
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	for kind, c := range jewelCodes {
		if c == code {
			return kind, true
		}
	}
	return Empty, false
}

// Palette is the ordered set of non-empty kinds a board may be filled with
type Palette []JewelKind

// DefaultPalette returns every non-empty kind
func DefaultPalette() Palette {
	return Palette{Red, Orange, Yellow, Green, Blue, Indigo, Violet}
}

// Validate checks that the palette holds no Empty, unknown or repeated kinds
func (p Palette) Validate() error {
	seen := make(map[JewelKind]bool, len(p))
	for _, kind := range p {
		if kind == Empty || kind < Empty || kind > Violet || seen[kind] {
			return ErrInvalidPalette
		}
		seen[kind] = true
	}
	return nil
}
