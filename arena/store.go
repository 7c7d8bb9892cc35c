package arena

// Store owns a monotonically growing flat byte buffer of fixed-size node
// slots. Slots are bump-allocated in increasing handle order and never
// returned to a free pool; see the package doc for the reclamation
// trade-off.
//
// A Store is exclusively owned by one logical caller; it performs no
// internal locking.
type Store struct {
	layout Layout
	codec  codec
	slots  []byte
	count  uint64
}

// NewStore returns an empty store using the given slot layout. No backing
// memory is allocated until the first Allocate.
func NewStore(layout Layout) (*Store, error) {
	c, err := layoutCodec(layout)
	if err != nil {
		return nil, err
	}
	return &Store{layout: layout, codec: c}, nil
}

// Layout returns the slot layout the store was created with.
func (s *Store) Layout() Layout {
	return s.layout
}

// Len returns the number of slots allocated so far. Handles 1..Len() are
// live.
func (s *Store) Len() uint64 {
	return s.count
}

// rec returns the slot bytes for h. h must be a handle minted by this
// store's Allocate; anything else panics on the bounds check.
func (s *Store) rec(h Handle) []byte {
	n := s.codec.slotBytes()
	off := (uint64(h) - 1) * n
	return s.slots[off : off+n]
}

// Allocate bump-allocates a new slot, encodes the (data, prev, next) triple
// into it, and returns its handle.
//
// The only failure modes are the layout's hard limits: ErrArenaFull once
// MaxSlots(layout) slots exist, and ErrDataOverflow for a packed-layout data
// value wider than FieldBits. A failed call allocates nothing.
func (s *Store) Allocate(data Data, prev, next Handle) (Handle, error) {
	if s.count == MaxSlots(s.layout) {
		return Null, ErrArenaFull
	}
	if err := s.codec.checkData(data); err != nil {
		return Null, err
	}
	s.slots = append(s.slots, make([]byte, s.codec.slotBytes())...)
	s.count++
	h := Handle(s.count)
	s.codec.encode(s.rec(h), data, prev, next)
	return h, nil
}

// Decode returns the (data, prev, next) triple stored at h. Fails with
// ErrNullHandle for the Null sentinel.
func (s *Store) Decode(h Handle) (Data, Handle, Handle, error) {
	if h == Null {
		return 0, Null, Null, ErrNullHandle
	}
	data, prev, next := s.codec.decode(s.rec(h))
	return data, prev, next, nil
}

// Encode overwrites the slot at h with the (data, prev, next) triple. Fails
// with ErrNullHandle for the Null sentinel and, in the packed layout, with
// ErrDataOverflow for a data value wider than FieldBits; either failure
// leaves the slot untouched.
func (s *Store) Encode(h Handle, data Data, prev, next Handle) error {
	if h == Null {
		return ErrNullHandle
	}
	if err := s.codec.checkData(data); err != nil {
		return err
	}
	s.codec.encode(s.rec(h), data, prev, next)
	return nil
}
