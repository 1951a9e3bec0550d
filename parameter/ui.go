package parameter

// Engine units per terminal cell; a cell is roughly twice as tall as wide so
// motion looks isotropic at equal per-axis speed
const (
	CellUnitsX = 10.0
	CellUnitsY = 20.0
)

// Settings ranges
const (
	MoveSpeedMin     = 0.0
	MoveSpeedMax     = 1.0
	MoveSpeedDefault = 0.5
	MoveSpeedStep    = 0.05

	FontSizeMin     = 30.0
	FontSizeMax     = 350.0
	FontSizeDefault = 80.0
	FontSizeStep    = 10.0

	// FontSizePerScale maps the point size setting to an integer glyph scale
	FontSizePerScale = 80.0

	AMPMScaleDefault = 0.25
)

// AMPMScales are the selectable AM/PM label size ratios
var AMPMScales = []float64{0.25, 0.5, 1.0}

// Side panels
const (
	// SettingsPanelWidth is the settings panel width in cells
	SettingsPanelWidth = 36

	// FontPickerWidth is the font picker width in cells
	FontPickerWidth = 28

	// ClockLineGap is the blank rows between the main time and the zone line
	ClockLineGap = 1

	// AMPMGap is the blank columns between the AM/PM label and the main time
	AMPMGap = 1
)

// Font
const (
	DefaultFont = "block"
)
