package numeral

import (
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitsRoundTrip(t *testing.T) {
	for _, radix := range []int{2, 3, 8, 10, 16, 36} {
		for _, n := range []uint64{0, 1, 7, 42, 255, 3333, 1 << 40} {
			s, err := Digits(n, radix)
			require.NoError(t, err)
			back, err := strconv.ParseUint(strings.ToLower(s), radix, 64)
			require.NoError(t, err)
			require.Equal(t, n, back, "radix %d", radix)
		}
	}
}

func TestDigitsUppercase(t *testing.T) {
	s, err := Digits(255, 16)
	require.NoError(t, err)
	require.Equal(t, "FF", s)
}

func TestDigitsRadixRange(t *testing.T) {
	_, err := Digits(10, 1)
	require.ErrorIs(t, err, ErrRadixOutOfRange)
	_, err = Digits(10, 37)
	require.ErrorIs(t, err, ErrRadixOutOfRange)
}

func TestRomanVectors(t *testing.T) {
	vectors := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		768:  "DCCLXVIII",
		1990: "MCMXC", // not MXM, cf. TeX82 §69
		2024: "MMXXIV",
		3999: "MMMCMXCIX",
	}
	for n, want := range vectors {
		s, err := Roman(n, false)
		require.NoError(t, err)
		require.Equal(t, want, s, "n = %d", n)
	}
}

func TestRomanOldstyle(t *testing.T) {
	s, err := Roman(4, true)
	require.NoError(t, err)
	require.Equal(t, "IIII", s)
	s, err = Roman(4000, true)
	require.NoError(t, err)
	require.Equal(t, "MMMM", s)
}

func TestRomanDomain(t *testing.T) {
	for _, n := range []int{0, -1, 4000} {
		_, err := Roman(n, false)
		require.ErrorIs(t, err, ErrRomanDomain, "n = %d", n)
	}
	_, err := Roman(5000, true)
	require.ErrorIs(t, err, ErrRomanDomain)
}

func TestRomanAlphabet(t *testing.T) {
	for n := 1; n <= 3999; n++ {
		s, err := Roman(n, false)
		require.NoError(t, err)
		require.NotEmpty(t, s)
		require.Empty(t, strings.Trim(s, "MDCLXVI"), "n = %d: %s", n, s)
	}
}

func TestCardinalVectors(t *testing.T) {
	vectors := map[int64]string{
		0:       "zero",
		4:       "four",
		15:      "fifteen",
		20:      "twenty",
		21:      "twenty-one",
		90:      "ninety",
		100:     "one hundred",
		101:     "one hundred one",
		999:     "nine hundred ninety-nine",
		1000:    "one thousand",
		1234:    "one thousand, two hundred thirty-four",
		1000000: "one million",
		-42:     "negative forty-two",
	}
	for n, want := range vectors {
		require.Equal(t, want, CardinalInt(n), "n = %d", n)
	}
}

func TestOrdinalVectors(t *testing.T) {
	vectors := map[int64]string{
		0:    "zeroth",
		1:    "first",
		2:    "second",
		3:    "third",
		4:    "fourth",
		12:   "twelfth",
		20:   "twentieth",
		21:   "twenty-first",
		40:   "fortieth",
		90:   "ninetieth",
		100:  "one hundredth",
		101:  "one hundred first",
		1000: "one thousandth",
	}
	for n, want := range vectors {
		require.Equal(t, want, OrdinalInt(n), "n = %d", n)
	}
}

func TestCardinalBig(t *testing.T) {
	huge, ok := new(big.Int).SetString("-999999999999999999999999999999999", 10)
	require.True(t, ok)
	require.Equal(t,
		"negative nine hundred ninety-nine nonillion, "+
			"nine hundred ninety-nine octillion, "+
			"nine hundred ninety-nine septillion, "+
			"nine hundred ninety-nine sextillion, "+
			"nine hundred ninety-nine quintillion, "+
			"nine hundred ninety-nine quadrillion, "+
			"nine hundred ninety-nine trillion, "+
			"nine hundred ninety-nine billion, "+
			"nine hundred ninety-nine million, "+
			"nine hundred ninety-nine thousand, "+
			"nine hundred ninety-nine",
		Cardinal(huge))
}

func TestCardinalBeyondNamedMagnitudes(t *testing.T) {
	// beyond nonillion the naming table ends and the power-of-ten fallback
	// kicks in
	big1e33 := new(big.Int).Exp(big.NewInt(10), big.NewInt(33), nil)
	s := Cardinal(big1e33)
	require.Contains(t, s, "times ten to the")
	require.Contains(t, s, "power")
}
