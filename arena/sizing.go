package arena

// SlotBytes returns the fixed byte width of one node slot for layout, or 0
// for an unknown layout.
func SlotBytes(layout Layout) uint64 {
	switch layout {
	case LayoutPacked:
		return PackedSlotBytes
	case LayoutUnpacked:
		return UnpackedSlotBytes
	default:
		return 0
	}
}

// MaxSlots returns the number of addressable node slots for layout.
//
// For LayoutPacked this is the hard field-width bound MaxFieldValue: a
// handle must fit in a packed link field. For LayoutUnpacked the bound is
// the full handle range; in practice allocation is memory bound long before
// it is handle bound.
func MaxSlots(layout Layout) uint64 {
	switch layout {
	case LayoutPacked:
		return MaxFieldValue
	case LayoutUnpacked:
		return ^uint64(0)
	default:
		return 0
	}
}

// SlotOffset returns the byte offset of h's slot for a store using layout.
// h must be a valid handle.
func SlotOffset(layout Layout, h Handle) uint64 {
	return (uint64(h) - 1) * SlotBytes(layout)
}
