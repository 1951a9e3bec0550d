package parameter

// Motion
const (
	// BaseSpeed is the per-tick velocity magnitude at speed scalar 1.0
	BaseSpeed = 10.0

	// BoundsMargin pads the clock extent under the padded bounds profile
	BoundsMargin = 5.0

	// BoundsNudge moves a clamped coordinate inward under the padded bounds profile
	BoundsNudge = 1.0
)

// Color selection
const (
	// HueBanTolerance is the circular hue distance within which a draw counts as banned
	HueBanTolerance = 0.05

	// HueMaxAttempts bounds the search for an unbanned hue
	HueMaxAttempts = 20

	// HueSaturationMin and HueSaturationMax bound the random saturation
	HueSaturationMin = 0.7
	HueSaturationMax = 0.9

	// HueValueMin and HueValueMax bound the random brightness
	HueValueMin = 0.7
	HueValueMax = 0.9

	// HueBanPrecision is the number of decimals kept for a banned hue
	HueBanPrecision = 1

	// PaletteOpacity is the alpha applied to palette colors over the black background
	PaletteOpacity = 0.85
)
