// Package landcover defines the Dynamic World V1 label schema: nine
// integer-coded classes with display names and map colors.
package landcover

import "image/color"

const (
	Water int = iota
	Trees
	Grass
	FloodedVegetation
	Crops
	ShrubScrub
	BuiltArea
	BareGround
	SnowIce

	NumClasses = 9
)

// Names maps a class code to its display name.
var Names = [NumClasses]string{
	"Water",
	"Trees",
	"Grass",
	"Flooded Veg",
	"Crops",
	"Shrub/Scrub",
	"Built Area",
	"Bare Ground",
	"Snow/Ice",
}

// Colors maps a class code to its map color.
var Colors = [NumClasses]color.NRGBA{
	{R: 64, G: 156, B: 222, A: 255},  // Water (blue)
	{R: 56, G: 125, B: 71, A: 255},   // Trees (dark green)
	{R: 135, G: 176, B: 84, A: 255},  // Grass (light green)
	{R: 122, G: 135, B: 199, A: 255}, // Flooded Veg (purple)
	{R: 227, G: 150, B: 54, A: 255},  // Crops (orange)
	{R: 222, G: 194, B: 89, A: 255},  // Shrub/Scrub (yellow)
	{R: 196, G: 41, B: 28, A: 255},   // Built Area (red)
	{R: 166, G: 156, B: 143, A: 255}, // Bare Ground (gray)
	{R: 255, G: 255, B: 255, A: 255}, // Snow/Ice (white)
}
