package numeral

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strconv"
	"strings"
)

// Digits returns the digit string of the non-negative integer n in the given
// radix. Digits beyond 9 are the uppercase letters 'A'…'Z'. Radixes are
// restricted to the range 2…36, violations return ErrRadixOutOfRange.
func Digits(n uint64, radix int) (string, error) {
	if radix < 2 || radix > 36 {
		return "", ErrRadixOutOfRange
	}
	return strings.ToUpper(strconv.FormatUint(n, radix)), nil
}

// Roman returns the Roman numeral representation of n.
//
// The algorithm is the one from section 69 of TeX82, including its treatment
// of subtractive forms (1990 is MCMXC, not MXM). With oldstyle set, additive
// forms are produced instead (4 is IIII) and the domain extends to 4999;
// otherwise the domain is 1…3999. Out-of-domain input returns ErrRomanDomain.
func Roman(n int, oldstyle bool) (string, error) {
	limit := 3999
	if oldstyle {
		limit = 4999
	}
	if n < 1 || n > limit {
		return "", ErrRomanDomain
	}
	const letters = "MDCLXVI"
	factors := []int{2, 5, 2, 5, 2, 5} // factors[i] relates letters[i] to letters[i+1]
	var sb strings.Builder
	j, v := 0, 1000
	for {
		for n >= v {
			sb.WriteByte(letters[j])
			n -= v
		}
		if n <= 0 {
			return sb.String(), nil
		}
		k, u := j+1, v/factors[j]
		if factors[j] == 2 {
			k++
			u /= factors[k-1]
		}
		if n+u >= v && !oldstyle {
			sb.WriteByte(letters[k])
			n += u
		} else {
			j++
			v /= factors[j-1]
		}
	}
}
