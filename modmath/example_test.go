package modmath_test

import (
	"fmt"

	"github.com/katalvlaran/cpkit/modmath"
)

// ExamplePower computes 2^10 mod 1000.
func ExamplePower() {
	v, err := modmath.Power(2, 10, 1000)
	fmt.Println(v, err)
	// Output: 24 <nil>
}

// ExampleGCD shows GCD and LCM side by side.
func ExampleGCD() {
	fmt.Println(modmath.GCD(48, 18), modmath.LCM(4, 6))
	// Output: 6 12
}
