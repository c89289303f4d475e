// Package layout holds the integer cell geometry shared by the overlay core:
// rectangles, points and sizes, plus the clamping helpers the positioning
// engine uses to keep floating content inside its container.
//
// Types are re-exported through the root overlay package for public consumption.
package layout
