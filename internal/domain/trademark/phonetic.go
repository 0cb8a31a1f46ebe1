package trademark

import "github.com/antzucaro/matchr"

// PhoneticScore is the binary-style agreement score of two names under two
// independent phonetic encodings.  The match flags are 0 or 1; AvgPhonetic is
// their mean, one of {0, 0.5, 1}.
type PhoneticScore struct {
	SoundexMatch   int     `json:"soundex"`
	MetaphoneMatch int     `json:"metaphone"`
	AvgPhonetic    float64 `json:"avg_phonetic"`
}

// PhoneticSimilarity compares two raw names by phonetic code equality.
// Soundex provides the coarse articulatory encoding; the primary Double
// Metaphone code serves as the more discriminating consonant-skeleton
// encoding.  Codes are computed on normalized names.  When either name is
// empty, before or after normalization, the all-zero score is returned.
func PhoneticSimilarity(name1, name2 string) PhoneticScore {
	if name1 == "" || name2 == "" {
		return PhoneticScore{}
	}
	n1, n2 := Normalize(name1), Normalize(name2)
	if n1 == "" || n2 == "" {
		return PhoneticScore{}
	}

	var s PhoneticScore
	if matchr.Soundex(n1) == matchr.Soundex(n2) {
		s.SoundexMatch = 1
	}
	m1, _ := matchr.DoubleMetaphone(n1)
	m2, _ := matchr.DoubleMetaphone(n2)
	if m1 == m2 {
		s.MetaphoneMatch = 1
	}
	s.AvgPhonetic = float64(s.SoundexMatch+s.MetaphoneMatch) / 2
	return s
}
