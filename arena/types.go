package arena

import "errors"

// FieldBits is the bit width of each node field in the packed slot layout.
// Three fields plus the reserved top bit fill the 64-bit slot word.
const FieldBits = 21

// MaxFieldValue bounds both Data values and the addressable slot count in
// the packed layout.
const MaxFieldValue = 1<<FieldBits - 1

// PackedSlotBytes is the fixed byte width of a packed node slot.
const PackedSlotBytes = 8

// UnpackedSlotBytes is the fixed byte width of an unpacked node slot:
// three uint64 fields at offsets 0/8/16.
const UnpackedSlotBytes = 24

// Handle names one node slot in a Store. Handles are 1-based; the zero value
// is the Null sentinel.
type Handle uint64

// Null is the reserved "no node" sentinel.
const Null Handle = 0

// IsValid reports whether h names a node at all. It never fails, even on
// Null.
func (h Handle) IsValid() bool {
	return h != Null
}

// Data is an opaque caller-owned datum reference. The store never inspects,
// copies, or dereferences it. Zero is an ordinary value.
type Data uint64

// Layout selects the slot encoding for a Store.
type Layout uint8

const (
	// LayoutPacked bit-packs all three node fields into one 8-byte word.
	LayoutPacked Layout = iota + 1

	// LayoutUnpacked stores the three node fields as separate uint64s.
	LayoutUnpacked
)

var (
	ErrNullHandle   = errors.New("arena: operation requires a live node handle")
	ErrDataOverflow = errors.New("arena: data handle exceeds the packed field width")
	ErrArenaFull    = errors.New("arena: addressable slot limit reached")
	ErrBadLayout    = errors.New("arena: unknown slot layout")
)
