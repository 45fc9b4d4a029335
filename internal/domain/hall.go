package domain

import (
	"context"
	"fmt"
	"time"
)

type SeatKind string

const (
	SeatStandard SeatKind = "standard"
	SeatVIP      SeatKind = "vip"
	SeatDisabled SeatKind = "disabled"
)

func (k SeatKind) Valid() bool {
	return k == SeatStandard || k == SeatVIP || k == SeatDisabled
}

// Bookable reports whether a seat of this kind can appear in a booking.
// Disabled seats exist in the layout but are never selectable.
func (k SeatKind) Bookable() bool {
	return k == SeatStandard || k == SeatVIP
}

// SeatDescriptor is one cell of a hall layout. Coordinates are 1-based.
type SeatDescriptor struct {
	Row  int      `json:"row"`
	Seat int      `json:"seat"`
	Kind SeatKind `json:"type"`
}

// Hall owns its seat layout and per-kind prices. Prices are integers in
// minor currency units. The layout is stored row-major and always holds
// exactly Rows*SeatsPerRow descriptors.
type Hall struct {
	ID            int
	Name          string
	Rows          int
	SeatsPerRow   int
	StandardPrice int
	VipPrice      int
	Layout        []SeatDescriptor
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GenerateLayout builds a full row-major grid of standard seats.
func GenerateLayout(rows, seatsPerRow int) []SeatDescriptor {
	layout := make([]SeatDescriptor, 0, rows*seatsPerRow)

	for row := 1; row <= rows; row++ {
		for seat := 1; seat <= seatsPerRow; seat++ {
			layout = append(layout, SeatDescriptor{Row: row, Seat: seat, Kind: SeatStandard})
		}
	}

	return layout
}

// ValidateLayout checks that an explicit layout matches the hall dimensions,
// uses only known seat kinds, and contains each coordinate exactly once.
func ValidateLayout(layout []SeatDescriptor, rows, seatsPerRow int) error {
	if len(layout) != rows*seatsPerRow {
		return fmt.Errorf("layout must contain exactly %d seats, got %d", rows*seatsPerRow, len(layout))
	}

	seen := make(map[string]bool, len(layout))

	for _, sd := range layout {
		if sd.Row < 1 || sd.Row > rows || sd.Seat < 1 || sd.Seat > seatsPerRow {
			return fmt.Errorf("seat %s is outside the %dx%d grid", SeatKey(sd.Row, sd.Seat), rows, seatsPerRow)
		}

		if !sd.Kind.Valid() {
			return fmt.Errorf("seat %s has unknown type %q", SeatKey(sd.Row, sd.Seat), sd.Kind)
		}

		key := SeatKey(sd.Row, sd.Seat)
		if seen[key] {
			return fmt.Errorf("seat %s appears more than once in layout", key)
		}
		seen[key] = true
	}

	return nil
}

// Resize regenerates the layout for the new dimensions. Seat kinds are
// preserved for coordinates present in both the old and the new grid; new
// coordinates default to standard.
func (h *Hall) Resize(rows, seatsPerRow int) {
	kinds := make(map[string]SeatKind, len(h.Layout))
	for _, sd := range h.Layout {
		kinds[SeatKey(sd.Row, sd.Seat)] = sd.Kind
	}

	layout := GenerateLayout(rows, seatsPerRow)
	for i := range layout {
		if kind, ok := kinds[SeatKey(layout[i].Row, layout[i].Seat)]; ok {
			layout[i].Kind = kind
		}
	}

	h.Rows = rows
	h.SeatsPerRow = seatsPerRow
	h.Layout = layout
}

// SeatAt resolves the descriptor at a 1-based coordinate.
func (h *Hall) SeatAt(row, seat int) (SeatDescriptor, bool) {
	if row < 1 || row > h.Rows || seat < 1 || seat > h.SeatsPerRow {
		return SeatDescriptor{}, false
	}

	// Layouts are stored row-major, so index arithmetic is enough for
	// well-formed halls. Fall back to a scan for anything irregular.
	idx := (row-1)*h.SeatsPerRow + (seat - 1)
	if idx < len(h.Layout) && h.Layout[idx].Row == row && h.Layout[idx].Seat == seat {
		return h.Layout[idx], true
	}

	for _, sd := range h.Layout {
		if sd.Row == row && sd.Seat == seat {
			return sd, true
		}
	}

	return SeatDescriptor{}, false
}

// PriceOf returns the price of a seat kind in minor units. Disabled seats
// are never priced because they are never bookable.
func (h *Hall) PriceOf(kind SeatKind) int {
	switch kind {
	case SeatVIP:
		return h.VipPrice
	case SeatStandard:
		return h.StandardPrice
	default:
		return 0
	}
}

type HallRepository interface {
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
	Create(ctx context.Context, hall *Hall) error
	Update(ctx context.Context, hall *Hall) error
	Delete(ctx context.Context, id int) error
}
