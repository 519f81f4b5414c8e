package conic

import (
	"fmt"
	"math"
	"strings"
)

// fmtNum formats a coordinate value for labels: integers print without a
// decimal point, everything else keeps one decimal.
func fmtNum(v float64) string {
	if math.Abs(v-math.Round(v)) < 0.01 {
		return fmt.Sprintf("%d", int(math.Round(v)))
	}
	return fmt.Sprintf("%.1f", v)
}

// fmtCoeff formats an equation coefficient: integers print exactly,
// everything else keeps two decimals.
func fmtCoeff(v float64) string {
	if math.Abs(v-math.Round(v)) < 0.01 {
		return fmt.Sprintf("%d", int(math.Round(v)))
	}
	return fmt.Sprintf("%.2f", v)
}

// linearTerm appends one term of a linear equation to b, with the usual
// simplifications: zero terms are dropped, unit coefficients keep only
// their sign.
func linearTerm(b *strings.Builder, coeff float64, variable string) {
	if math.Abs(coeff) < 0.01 {
		return
	}

	switch {
	case b.Len() == 0 && coeff < 0:
		b.WriteString("-")
	case b.Len() > 0 && coeff < 0:
		b.WriteString(" - ")
	case b.Len() > 0:
		b.WriteString(" + ")
	}

	abs := math.Abs(coeff)
	if variable == "" || math.Abs(abs-1) >= 0.01 {
		b.WriteString(fmtCoeff(abs))
	}
	b.WriteString(variable)
}

// linearEquation renders "Ax + By + C = 0" with simplified coefficients.
func linearEquation(a, bc, c float64) string {
	var b strings.Builder
	linearTerm(&b, a, "x")
	linearTerm(&b, bc, "y")
	linearTerm(&b, c, "")
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString(" = 0")
	return b.String()
}
