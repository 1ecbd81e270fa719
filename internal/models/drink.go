package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNegativeQuantity is returned when an operation would leave a drink count below zero
var ErrNegativeQuantity = errors.New("drink quantity cannot be negative")

// ErrNilQuantityMap is returned when adding a count to a nil quantity map
var ErrNilQuantityMap = errors.New("quantity map is nil, use NewQuantityMap")

// DrinkType is the kind of drink a quantity is denominated in
type DrinkType string

const (
	// DrinkTypeBeer is beer
	DrinkTypeBeer DrinkType = "beer"

	// DrinkTypeCider is cider
	DrinkTypeCider DrinkType = "cider"

	// DrinkTypeHardSeltzer is hard seltzer
	DrinkTypeHardSeltzer DrinkType = "hard_seltzer"

	// DrinkTypeWine is wine
	DrinkTypeWine DrinkType = "wine"

	// DrinkTypeSpirit is any spirit
	DrinkTypeSpirit DrinkType = "spirit"
)

// DrinkTypes lists every drink type in display order
var DrinkTypes = []DrinkType{
	DrinkTypeBeer,
	DrinkTypeCider,
	DrinkTypeHardSeltzer,
	DrinkTypeWine,
	DrinkTypeSpirit,
}

// MeasureType is how much of a drink one unit represents
type MeasureType string

const (
	// MeasureTypeSip is a single sip
	MeasureTypeSip MeasureType = "sip"

	// MeasureTypeShot is a shot
	MeasureTypeShot MeasureType = "shot"

	// MeasureTypeChug is a chug
	MeasureTypeChug MeasureType = "chug"
)

// MeasureTypes lists every measure type in display order
var MeasureTypes = []MeasureType{
	MeasureTypeSip,
	MeasureTypeShot,
	MeasureTypeChug,
}

var drinkTypeNames = map[DrinkType]string{
	DrinkTypeBeer:        "Beer",
	DrinkTypeCider:       "Cider",
	DrinkTypeHardSeltzer: "Hard Seltzer",
	DrinkTypeWine:        "Wine",
	DrinkTypeSpirit:      "Spirit",
}

var measureTypeNames = map[MeasureType]string{
	MeasureTypeSip:  "Sip",
	MeasureTypeShot: "Shot",
	MeasureTypeChug: "Chug",
}

// Valid reports whether d is one of the known drink types
func (d DrinkType) Valid() bool {
	_, ok := drinkTypeNames[d]
	return ok
}

// DisplayName returns the human readable name of the drink type
func (d DrinkType) DisplayName() string {
	if name, ok := drinkTypeNames[d]; ok {
		return name
	}
	return string(d)
}

// Valid reports whether m is one of the known measure types
func (m MeasureType) Valid() bool {
	_, ok := measureTypeNames[m]
	return ok
}

// DisplayName returns the human readable name of the measure type
func (m MeasureType) DisplayName() string {
	if name, ok := measureTypeNames[m]; ok {
		return name
	}
	return string(m)
}

// ParseDrinkType parses a drink type, ignoring case and surrounding whitespace
func ParseDrinkType(s string) (DrinkType, error) {
	d := DrinkType(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown drink type %q", s)
	}
	return d, nil
}

// ParseMeasureType parses a measure type, ignoring case and surrounding whitespace
func ParseMeasureType(s string) (MeasureType, error) {
	m := MeasureType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown measure type %q", s)
	}
	return m, nil
}

// DrinkUnit is the (drink type, measure type) pair quantities are keyed by
type DrinkUnit struct {
	DrinkType   DrinkType   `json:"drink_type"`
	MeasureType MeasureType `json:"measure_type"`
}

// Valid reports whether both halves of the unit are known
func (u DrinkUnit) Valid() bool {
	return u.DrinkType.Valid() && u.MeasureType.Valid()
}

// String renders the unit as e.g. "Beer Sip"
func (u DrinkUnit) String() string {
	return fmt.Sprintf("%s %s", u.DrinkType.DisplayName(), u.MeasureType.DisplayName())
}

// Less orders units by the display order of DrinkTypes, then MeasureTypes
func (u DrinkUnit) Less(other DrinkUnit) bool {
	if u.DrinkType != other.DrinkType {
		return indexOf(DrinkTypes, u.DrinkType) < indexOf(DrinkTypes, other.DrinkType)
	}
	return indexOf(MeasureTypes, u.MeasureType) < indexOf(MeasureTypes, other.MeasureType)
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return len(list)
}

// QuantityMap holds drink counts keyed by drink type and measure type.
// Absent entries are zero and zero entries are never stored.
type QuantityMap map[DrinkType]map[MeasureType]int

// NewQuantityMap returns an empty quantity map
func NewQuantityMap() QuantityMap {
	return QuantityMap{}
}

// Get returns the count for a unit
func (q QuantityMap) Get(d DrinkType, m MeasureType) int {
	if q == nil {
		return 0
	}
	return q[d][m]
}

// Add adds n (which may be negative) to a unit. If the result would be
// negative the map is left untouched and ErrNegativeQuantity is returned.
// The map must be non-nil to store a positive count; a nil map returns
// ErrNilQuantityMap instead.
func (q QuantityMap) Add(d DrinkType, m MeasureType, n int) error {
	next := q.Get(d, m) + n
	if next < 0 {
		return fmt.Errorf("%w: %s would be %d", ErrNegativeQuantity, DrinkUnit{d, m}, next)
	}
	if q == nil && next > 0 {
		return ErrNilQuantityMap
	}

	if next == 0 {
		if inner, ok := q[d]; ok {
			delete(inner, m)
			if len(inner) == 0 {
				delete(q, d)
			}
		}
		return nil
	}

	if q[d] == nil {
		q[d] = map[MeasureType]int{}
	}
	q[d][m] = next
	return nil
}

// Total returns the sum of every count regardless of unit
func (q QuantityMap) Total() int {
	total := 0
	for _, inner := range q {
		for _, n := range inner {
			total += n
		}
	}
	return total
}

// IsZero reports whether every count is zero
func (q QuantityMap) IsZero() bool {
	return q.Total() == 0
}

// Clone returns a deep copy
func (q QuantityMap) Clone() QuantityMap {
	out := make(QuantityMap, len(q))
	for d, inner := range q {
		copied := make(map[MeasureType]int, len(inner))
		for m, n := range inner {
			copied[m] = n
		}
		out[d] = copied
	}
	return out
}

// Units returns the units with a non-zero count in display order
func (q QuantityMap) Units() []DrinkUnit {
	var units []DrinkUnit
	for d, inner := range q {
		for m, n := range inner {
			if n != 0 {
				units = append(units, DrinkUnit{DrinkType: d, MeasureType: m})
			}
		}
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].Less(units[j])
	})
	return units
}
