package modmath

import (
	"fmt"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b, non-negative except
// for GCD(MinInt, 0) and GCD(0, MinInt) of a signed type, where |MinInt|
// does not fit and MinInt itself is returned.
// GCD(a, 0) == |a| and GCD(0, 0) == 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := (a / GCD(a, b)) * b
	if l < 0 {
		l = -l
	}
	return l
}

// Power returns base^exp mod mod in [0, mod) by square-and-multiply.
// A negative base is first reduced into [0, mod).
func Power(base, exp, mod int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, exp)
	}
	if mod <= 0 {
		return 0, fmt.Errorf("%w: modulus %d must be positive", ErrInvalidArgument, mod)
	}

	m := uint64(mod)
	b := uint64(normalize(base, mod))
	res := uint64(1) % m
	for e := uint64(exp); e > 0; e >>= 1 {
		if e&1 == 1 {
			res = mulMod(res, b, m)
		}
		b = mulMod(b, b, m)
	}

	return int64(res), nil
}

// PowerBig is Power over arbitrary-precision integers.
// The arguments are not modified.
func PowerBig(base, exp, mod *big.Int) (*big.Int, error) {
	if base == nil || exp == nil || mod == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidArgument)
	}
	if exp.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent %s", ErrInvalidArgument, exp)
	}
	if mod.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus %s must be positive", ErrInvalidArgument, mod)
	}
	b := new(big.Int).Mod(base, mod) // Euclidean: always in [0, mod)

	return new(big.Int).Exp(b, exp, mod), nil
}

// ModInverse returns x in [0, mod) with a*x ≡ 1 (mod mod), using the
// extended Euclidean algorithm.
func ModInverse(a, mod int64) (int64, error) {
	if mod <= 0 {
		return 0, fmt.Errorf("%w: modulus %d must be positive", ErrInvalidArgument, mod)
	}
	oldR, r := normalize(a, mod), mod
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, mod, oldR)
	}

	return normalize(oldS, mod), nil
}

// normalize reduces x into [0, mod); mod must be positive.
func normalize(x, mod int64) int64 {
	x %= mod
	if x < 0 {
		x += mod
	}
	return x
}

// mulMod returns a*b mod m with a 128-bit intermediate product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
