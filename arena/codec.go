package arena

// codec encodes or decodes one node record (data, prev, next) in a slot.
//
// encode is infallible; callers must run checkData before it. This keeps the
// validate-then-mutate split explicit: a Store method rejects bad input
// before any byte of the slot changes.
type codec interface {
	slotBytes() uint64
	checkData(data Data) error
	encode(rec []byte, data Data, prev, next Handle)
	decode(rec []byte) (Data, Handle, Handle)
}

func layoutCodec(layout Layout) (codec, error) {
	switch layout {
	case LayoutPacked:
		return packedCodec{}, nil
	case LayoutUnpacked:
		return unpackedCodec{}, nil
	default:
		return nil, ErrBadLayout
	}
}
