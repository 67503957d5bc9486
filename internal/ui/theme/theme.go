package theme

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.1)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(40)
	ButtonHeight     = float32(44)
	AccentStripWidth = float32(4)
	GaugeHeight      = float32(10)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type ListItemState int

const (
	ListItemNormal ListItemState = iota
	ListItemSelected
	ListItemDisabled
)

// Band says where a reading sits against its optimal range.
type Band int

const (
	BandInside Band = iota
	BandNear
	BandOutside
)

// BandFor classifies value against [lo, hi]; within slack of the range
// counts as near.
func BandFor(value, lo, hi, slack int) Band {
	switch {
	case value >= lo && value <= hi:
		return BandInside
	case value >= lo-slack && value <= hi+slack:
		return BandNear
	default:
		return BandOutside
	}
}
