package model

// BarKind tells where a bar came from.
type BarKind int

const (
	BarNew      BarKind = iota // Cut from a fresh standard-length bar
	BarLeftover                // Reused offcut from the inventory
	BarUnfit                   // Marker for a part that fits no available bar
)

func (k BarKind) String() string {
	switch k {
	case BarLeftover:
		return "Leftover"
	case BarUnfit:
		return "Unfit"
	default:
		return "New"
	}
}

func (k BarKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *BarKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Leftover":
		*k = BarLeftover
	case "Unfit":
		*k = BarUnfit
	default:
		*k = BarNew
	}
	return nil
}

// Bar is one stock piece being cut. Cuts holds the offset of the far end of
// each placed item, measured from the raw bar start.
type Bar struct {
	Kind       BarKind   `json:"kind"`
	Length     float64   `json:"length"` // Raw length mm
	Trim       float64   `json:"trim"`
	Kerf       float64   `json:"kerf"`
	Items      []Item    `json:"items"`
	Cuts       []float64 `json:"cuts"`
	Leftover   float64   `json:"leftover"`
	Efficiency float64   `json:"efficiency"` // 0..1

	cursor float64
}

// NewBar returns an empty bar. Its leftover starts at the trimmed length.
func NewBar(kind BarKind, length, trim, kerf float64) *Bar {
	leftover := length - 2*trim
	if leftover < 0 {
		leftover = 0
	}
	return &Bar{
		Kind:     kind,
		Length:   length,
		Trim:     trim,
		Kerf:     kerf,
		Leftover: leftover,
		cursor:   trim,
	}
}

// Cost returns how much of the leftover placing an item of the given length
// consumes. The first piece on a bar needs no separating kerf.
func (b *Bar) Cost(length float64) float64 {
	if len(b.Items) == 0 {
		return length
	}
	return length + b.Kerf
}

// Fits reports whether an item of the given length still fits on the bar.
func (b *Bar) Fits(length float64) bool {
	return b.Cost(length) <= b.Leftover+Tolerance
}

// Add places an item at the cursor. The caller must have checked Fits.
func (b *Bar) Add(item Item) {
	b.Leftover -= b.Cost(item.Length)
	if b.Leftover < 0 {
		// Only Tolerance-sized drift can get here.
		b.Leftover = 0
	}
	b.Items = append(b.Items, item)
	b.Cuts = append(b.Cuts, b.cursor+item.Length)
	b.cursor += item.Length + b.Kerf
	if b.Length > 0 {
		b.Efficiency = (b.Length - b.Leftover) / b.Length
	}
}

// UsedLength returns the total length of the placed items.
func (b Bar) UsedLength() float64 {
	var total float64
	for _, it := range b.Items {
		total += it.Length
	}
	return total
}

// KerfCount returns the number of kerfs charged on the bar.
func (b Bar) KerfCount() int {
	if len(b.Items) == 0 {
		return 0
	}
	return len(b.Items) - 1
}

// NetLength is the raw length minus the trims at both ends.
func (b Bar) NetLength() float64 {
	return b.Length - 2*b.Trim
}

// Empty reports whether nothing was cut from the bar.
func (b Bar) Empty() bool {
	return len(b.Items) == 0
}
