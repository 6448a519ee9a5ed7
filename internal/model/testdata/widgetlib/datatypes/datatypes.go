// Package datatypes declares the widget color model.
package datatypes

// ColorDepth is the number of color channels per pixel.
const ColorDepth = 4
