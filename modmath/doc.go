// Package modmath provides integer number theory helpers: GCD, LCM,
// modular exponentiation and modular inverse.
//
// Width contract:
//
//   - Power and ModInverse take int64 operands. Products are formed in
//     128 bits (math/bits.Mul64 + bits.Rem64) before reduction, so any
//     modulus up to math.MaxInt64 is safe.
//   - PowerBig works on *big.Int for arbitrary precision.
//   - GCD and LCM are generic over every Go integer type and follow that
//     type's width; LCM divides before multiplying to delay overflow, but
//     a result that does not fit T still wraps.
//
// Errors:
//
//   - ErrInvalidArgument: negative exponent, non-positive modulus or nil
//     operand (wraps cpkit.ErrInvalidArgument).
//   - ErrNoInverse: ModInverse when gcd(a, mod) != 1.
package modmath
