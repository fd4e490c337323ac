package models

import "fmt"

// Crust is the style of pizza base. CrustNone means nothing is selected yet.
type Crust int

const (
	CrustNone Crust = iota
	CrustThin
	CrustRegular
	CrustDeepDish
)

var crustLabels = map[Crust]string{
	CrustThin:     "Thin",
	CrustRegular:  "Regular",
	CrustDeepDish: "Deep-dish",
}

// Crusts returns the selectable crusts in display order.
func Crusts() []Crust {
	return []Crust{CrustThin, CrustRegular, CrustDeepDish}
}

func (c Crust) String() string {
	return crustLabels[c]
}

// IsSet reports whether c is one of the selectable crusts.
func (c Crust) IsSet() bool {
	_, ok := crustLabels[c]
	return ok
}

// ParseCrust maps a display label back to its crust. An empty label maps to
// CrustNone.
func ParseCrust(label string) (Crust, error) {
	if label == "" {
		return CrustNone, nil
	}
	for _, c := range Crusts() {
		if c.String() == label {
			return c, nil
		}
	}
	return CrustNone, fmt.Errorf("unknown crust %q", label)
}

// Size is the portion tier. The zero value is Small, which is also the
// form default.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeSuper
)

// DefaultSize is the size a fresh or cleared form starts with.
const DefaultSize = SizeSmall

type sizeInfo struct {
	label string
	price float64
}

var sizeTable = [...]sizeInfo{
	SizeSmall:  {"Small", 8.00},
	SizeMedium: {"Medium", 12.00},
	SizeLarge:  {"Large", 16.00},
	SizeSuper:  {"Super", 20.00},
}

// Sizes returns the selectable sizes in display order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeSuper}
}

func (s Size) valid() bool {
	return s >= SizeSmall && int(s) < len(sizeTable)
}

func (s Size) String() string {
	if !s.valid() {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeTable[s].label
}

// BasePrice is the price of a plain pizza of this size.
func (s Size) BasePrice() float64 {
	if !s.valid() {
		return 0
	}
	return sizeTable[s].price
}

func ParseSize(label string) (Size, error) {
	for _, s := range Sizes() {
		if s.String() == label {
			return s, nil
		}
	}
	return DefaultSize, fmt.Errorf("unknown size %q", label)
}

const (
	// ToppingCount is the fixed number of toppings on the form.
	ToppingCount = 6
	// ToppingPrice is the flat price of any single topping.
	ToppingPrice = 1.00
)

// ToppingLabel returns the display name of the topping at index i (0-based).
func ToppingLabel(i int) string {
	return fmt.Sprintf("Topping %d", i+1)
}

// Toppings holds one flag per topping, indexed in display order.
type Toppings [ToppingCount]bool

// Count returns the number of selected toppings.
func (t Toppings) Count() int {
	n := 0
	for _, on := range t {
		if on {
			n++
		}
	}
	return n
}

// Selected returns the indices of the selected toppings in ascending order.
func (t Toppings) Selected() []int {
	idx := make([]int, 0, ToppingCount)
	for i, on := range t {
		if on {
			idx = append(idx, i)
		}
	}
	return idx
}

// Selection is the user's current choice of crust, size and toppings.
type Selection struct {
	Crust    Crust
	Size     Size
	Toppings Toppings
}

// NewSelection returns the startup selection: no crust, default size, no
// toppings.
func NewSelection() Selection {
	return Selection{Crust: CrustNone, Size: DefaultSize}
}

// IsComplete reports whether the selection can be priced.
func (s Selection) IsComplete() bool {
	return s.Crust.IsSet() && s.Toppings.Count() > 0
}
