package machin

import (
	"fmt"
	"strings"

	"modernc.org/mathutil"
)

// ============================================================
// π digit extraction
// ============================================================
//
// Computes the n-th decimal digit of π in constant memory using only
// integer arithmetic, from Gosper's hypergeometric series
//
//	π = Σ (50k-6) / (binomial(3k,k)·2^k), k = 0..∞
//
// combined with Plouffe's digit-extraction method: the series is split into
// fractions over prime powers, each evaluated modulo that prime power with
// the target digit shifted to the most significant decimal place. Digits are
// accurate through position 17400.

// Digits returns the decimal digits of π covering positions start through
// end. Position 0 is the integer part and renders as "3."; fractional
// positions are 1-based. Digits come in 9-digit chunks, so the result may
// run a few positions past end.
func Digits(start, end int) string {
	if start < 0 {
		panic("machin: negative digit position")
	}
	var b strings.Builder
	if start == 0 {
		b.WriteString("3.")
		start++
	}
	for i := start - 1; i < end; i += 9 {
		fmt.Fprintf(&b, "%09d", piChunk(i))
	}
	return b.String()
}

// root50k[i] is the largest p with p^i ≤ 50000; caps the prime powers used
// so that every modulus stays within the fixed-point accumulator's range.
var root50k = [10]int{50000, 50000, 223, 36, 14, 8, 6, 4, 3, 3}

// piChunk returns the 9 decimal digits of π at positions startDigit+1
// through startDigit+9, packed into one integer.
func piChunk(startDigit int) int {
	sum, sumLow := 0, 0
	// 269/238 approximates log10(13.5), the series' per-term digit gain.
	N := (startDigit + 19) * 238 / 269

	for prime := 2; prime <= 3*N; prime = nextPrime(prime) {
		// Prime powers of this prime that can appear in the terms. Ten
		// powers cover every start position below 17500.
		var pows []int
		for i := 0; i < 10 && prime <= root50k[i]; i++ {
			pows = append(pows, ipow(prime, i))
		}

		// Work modulo the largest usable power, with exponent greater than
		// 1 for small primes.
		exponent := -1
		for _, pw := range pows {
			if pw <= 3*N {
				exponent++
			}
		}
		m := ipow(prime, exponent)

		if prime == 2 {
			// The series carries a 2^N denominator; the 10^startDigit
			// decimal shift in the numerator carries powers of 2 that
			// cancel it. Once startDigit outgrows N the whole exponent
			// cancels and the prime drops out.
			exponent += N - 1
			m = ipow(2, exponent-startDigit)
			if m == 0 {
				continue
			}
		}

		// Shift the target digit to the most significant decimal place.
		decimal := 10
		if prime == 2 {
			decimal = 5 // the powers of 2 in the shift were used above
		}
		decimalShift := powMod(decimal, startDigit, m)

		subtotal := 0
		numerator := 1
		denominator := 1
		for k := 1; k <= N; k++ {
			t1 := 2 * k
			t2 := 2*k - 1
			exponent += reduce(&t1, pows)
			exponent += reduce(&t2, pows)
			terms := (t1 % m) * (t2 % m) % m
			numerator = numerator * terms % m

			t3 := 6*k - 4
			t4 := 9*k - 3
			exponent -= reduce(&t3, pows)
			exponent -= reduce(&t4, pows)
			terms = (t3 % m) * (t4 % m) % m
			denominator = denominator * terms % m

			t := (50*k - 6) % m
			if exponent < 0 {
				t = 0
			} else {
				t = t * powMod(prime, exponent, m) % m
			}
			t = t * numerator % m
			t = t * invMod(denominator, m) % m
			subtotal = (subtotal + t) % m
		}
		subtotal = subtotal * decimalShift % m

		// One fraction over a prime power; accumulate it.
		fixedPointSum(subtotal, m, &sum, &sumLow)
	}
	return sum
}

// fixedPointSum adds n/d to the fractional accumulator (hi, lo), which holds
// 18 decimal places across two 9-digit limbs, discarding overflow into the
// integer part. For powers of 2, d may reach 8388608; otherwise d must stay
// below 50000.
func fixedPointSum(n, d int, hi, lo *int) {
	r := 0
	if d > 60000 {
		d = d / 256
		r = n % 256 * 125
		n = n / 256
	}

	// Digits 1 to 9
	a := n*32000 + r
	*hi += a / d * 31250
	b := a % d * 31250
	*hi += b / d

	// Digits 10 to 18
	c := b % d * 32000
	*lo += c / d * 31250
	*lo += c % d * 31250 / d

	if *lo > 1000000000 {
		*hi++
	}
	*hi %= 1000000000
	*lo %= 1000000000
}

// reduce divides the largest available prime power out of *n and returns its
// exponent. pows[0] is 1, so the bare value always reduces.
func reduce(n *int, pows []int) int {
	for i := len(pows) - 1; i > 0; i-- {
		if *n%pows[i] == 0 {
			*n /= pows[i]
			return i
		}
	}
	return 0
}

// powMod returns a^b mod m.
func powMod(a, b, m int) int {
	result := 1
	for b > 0 {
		if b&1 == 1 {
			result = result * a % m
		}
		a = a * a % m
		b >>= 1
	}
	return result
}

// invMod returns x with a·x ≡ 1 (mod m); a must be coprime to m.
func invMod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	t, newt := 0, 1
	r, newr := m, a
	for newr != 0 {
		q := r / newr
		t, newt = newt, t-q*newt
		r, newr = newr, r-q*newr
	}
	if t < 0 {
		t += m
	}
	return t
}

func ipow(base, exp int) int {
	if exp < 0 {
		return 0
	}
	r := 1
	for ; exp > 0; exp-- {
		r *= base
	}
	return r
}

func nextPrime(n int) int {
	p, _ := mathutil.NextPrime(uint32(n))
	return int(p)
}
