package arena

// packedCodec bit-packs one node record into a single big-endian 8-byte
// word:
//
//	bit  63     reserved, always zero
//	bits 62..42 data
//	bits 41..21 prev
//	bits 20..0  next
//
// The reserved bit staying zero is an invariant of the layout: with every
// field masked to FieldBits bits, no mutation can set it.
type packedCodec struct{}

func (packedCodec) slotBytes() uint64 {
	return PackedSlotBytes
}

func (packedCodec) checkData(data Data) error {
	if uint64(data) > MaxFieldValue {
		return ErrDataOverflow
	}
	return nil
}

func (packedCodec) encode(rec []byte, data Data, prev, next Handle) {
	word := uint64(data)<<(2*FieldBits) |
		uint64(prev)<<FieldBits |
		uint64(next)
	writeU64BE(rec, word)
}

func (packedCodec) decode(rec []byte) (Data, Handle, Handle) {
	word := readU64BE(rec)
	data := Data(word >> (2 * FieldBits) & MaxFieldValue)
	prev := Handle(word >> FieldBits & MaxFieldValue)
	next := Handle(word & MaxFieldValue)
	return data, prev, next
}
