package numeral

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math/big"
	"strings"
)

var cardinals = []string{"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}

var ordinals = []string{"zeroth", "first", "second", "third", "fourth",
	"fifth", "sixth", "seventh", "eighth", "ninth",
	"tenth", "eleventh", "twelfth", "thirteenth", "fourteenth",
	"fifteenth", "sixteenth", "seventeenth", "eighteenth", "nineteenth"}

var tenstems = []string{"", "ten", "twent", "thirt", "fort", "fift",
	"sixt", "sevent", "eight", "ninet"}

var tenCubes = []string{"", "thousand", "million", "billion", "trillion",
	"quadrillion", "quintillion", "sextillion", "septillion",
	"octillion", "nonillion"}

var big100 = big.NewInt(100)
var big1000 = big.NewInt(1000)

// Cardinal returns the English cardinal name of n ("forty-two").
//
// Magnitudes beyond the largest entry of the power-of-a-thousand naming
// table are expressed as "… times ten to the Nth power plus …".
func Cardinal(n *big.Int) string {
	return itoe(n, false)
}

// Ordinal returns the English ordinal name of n ("forty-second").
func Ordinal(n *big.Int) string {
	return itoe(n, true)
}

// CardinalInt is Cardinal for machine-sized integers.
func CardinalInt(n int64) string {
	return Cardinal(big.NewInt(n))
}

// OrdinalInt is Ordinal for machine-sized integers.
func OrdinalInt(n int64) string {
	return Ordinal(big.NewInt(n))
}

// small spells a number in the range 0…999.
func small(n int, ordinal bool) string {
	table, osuff, tsuff0 := cardinals, "", "y"
	if ordinal {
		table, osuff, tsuff0 = ordinals, "th", "ieth"
	}
	if n >= 100 {
		s := small(n/100, false) + " hundred"
		if n%100 == 0 {
			return s + osuff
		}
		return s + " " + small(n%100, ordinal)
	}
	if n < 20 {
		return table[n]
	}
	ones := n % 10
	if ones == 0 {
		return tenstems[n/10] + tsuff0
	}
	return tenstems[n/10] + "y-" + table[ones]
}

func itoe(n *big.Int, ordinal bool) string {
	var sb strings.Builder
	m := new(big.Int).Set(n)
	if m.Sign() < 0 {
		sb.WriteString("negative ")
		m.Abs(m)
	}
	if m.Cmp(big1000) < 0 {
		sb.WriteString(small(int(m.Int64()), ordinal))
		return sb.String()
	}
	osuff := ""
	if ordinal {
		osuff = "th"
	}
	v := (len(m.Text(10)) - 1) / 3
	u := new(big.Int).Exp(big1000, big.NewInt(int64(v)), nil)
	q, rem := new(big.Int), new(big.Int)
	for v >= 0 {
		q.QuoRem(m, u, rem)
		if q.Sign() != 0 {
			sb.WriteString(itoe(q, ordinal && v == 0))
			if v >= len(tenCubes) {
				tracer().Debugf("numeral: magnitude 1000^%d beyond naming table", v)
				sb.WriteString(" times ten to the ")
				sb.WriteString(OrdinalInt(int64(3 * v)))
				sb.WriteString(" power plus")
			} else if tenCubes[v] != "" {
				sb.WriteString(" ")
				sb.WriteString(tenCubes[v])
			}
			m.Set(rem)
			if m.Sign() == 0 {
				if v > 0 {
					sb.WriteString(osuff)
				}
			} else {
				if m.Cmp(big100) >= 0 && v < len(tenCubes) {
					sb.WriteString(",")
				}
				sb.WriteString(" ")
			}
		}
		v--
		u.Quo(u, big1000)
	}
	return sb.String()
}
