// Package conic builds didactic figures for the conic sections: the
// standard ellipse, hyperbola, parabola, circle and straight line.
//
// Each builder derives the closed-form quantities of its curve (foci,
// vertices, directrices, asymptotes, intercepts, equation forms) at
// construction time and exposes them as plain values; Build then turns
// the shape into a mathfig node tree following the textbook drawing
// conventions (solid curve, accent dots on foci, dashed helper lines).
package conic
