package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorRoom            = color.RGBA{160, 160, 180, 255} // Light gray-blue for room names
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorTimer           = color.RGBA{100, 255, 150, 255} // Green
	colorTimerLow        = color.RGBA{255, 120, 120, 255} // Red
	colorSolved          = color.RGBA{100, 255, 100, 255} // Bright green
	colorPrompt          = color.RGBA{255, 220, 100, 255} // Yellow
)

// confettiColors are picked round-robin for particles
var confettiColors = []color.RGBA{
	{255, 100, 100, 255},
	{255, 220, 100, 255},
	{100, 255, 150, 255},
	{100, 150, 255, 255},
	{220, 170, 255, 255},
}

// Window geometry
const (
	windowWidth  = 960
	windowHeight = 640
	margin       = 24
	lineSpacing  = 1.4
	uiFontSize   = 16.0
	titleSize    = 24.0
)

// Confetti tuning
const (
	confettiCount   = 120
	confettiGravity = 0.15
	confettiSize    = 6
	maxTypedRunes   = 200
)
