package trademark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneticSimilarity_IdenticalNames(t *testing.T) {
	t.Parallel()

	s := PhoneticSimilarity("Apple", "apple")
	assert.Equal(t, 1, s.SoundexMatch)
	assert.Equal(t, 1, s.MetaphoneMatch)
	assert.Equal(t, 1.0, s.AvgPhonetic)
}

func TestPhoneticSimilarity_UnrelatedNames(t *testing.T) {
	t.Parallel()

	s := PhoneticSimilarity("apple", "zebra")
	assert.Equal(t, 0, s.SoundexMatch)
	assert.Equal(t, 0, s.MetaphoneMatch)
	assert.Equal(t, 0.0, s.AvgPhonetic)
}

func TestPhoneticSimilarity_CloseSpelling(t *testing.T) {
	t.Parallel()

	// A trailing one-letter substitution keeps the Soundex code intact.
	s := PhoneticSimilarity("Microsoft", "Microsofy")
	assert.Equal(t, 1, s.SoundexMatch)
	assert.GreaterOrEqual(t, s.AvgPhonetic, 0.5)
}

func TestPhoneticSimilarity_EmptyInputs(t *testing.T) {
	t.Parallel()

	zero := PhoneticScore{}
	assert.Equal(t, zero, PhoneticSimilarity("", "Apple"))
	assert.Equal(t, zero, PhoneticSimilarity("Apple", ""))
	assert.Equal(t, zero, PhoneticSimilarity("", ""))
	// Punctuation-only names normalize to empty and score zero too.
	assert.Equal(t, zero, PhoneticSimilarity("!!!", "Apple"))
}

func TestPhoneticSimilarity_AvgIsHalfOnSingleAgreement(t *testing.T) {
	t.Parallel()

	// The average is always one of {0, 0.5, 1}.
	for _, pair := range [][2]string{
		{"Apple", "Apple"},
		{"Apple", "Zebra"},
		{"Microsoft", "Microsofy"},
		{"Smith", "Schmidt"},
	} {
		s := PhoneticSimilarity(pair[0], pair[1])
		assert.Contains(t, []float64{0, 0.5, 1}, s.AvgPhonetic, "pair %v", pair)
		assert.Equal(t, float64(s.SoundexMatch+s.MetaphoneMatch)/2, s.AvgPhonetic)
	}
}
