package arena

// unpackedCodec stores the three node fields as separately addressable
// big-endian uint64s:
//
//	rec[0:8]   data
//	rec[8:16]  prev
//	rec[16:24] next
//
// The full field width means there is no data overflow condition.
type unpackedCodec struct{}

func (unpackedCodec) slotBytes() uint64 {
	return UnpackedSlotBytes
}

func (unpackedCodec) checkData(Data) error {
	return nil
}

func (unpackedCodec) encode(rec []byte, data Data, prev, next Handle) {
	writeU64BE(rec[0:8], uint64(data))
	writeU64BE(rec[8:16], uint64(prev))
	writeU64BE(rec[16:24], uint64(next))
}

func (unpackedCodec) decode(rec []byte) (Data, Handle, Handle) {
	data := Data(readU64BE(rec[0:8]))
	prev := Handle(readU64BE(rec[8:16]))
	next := Handle(readU64BE(rec[16:24]))
	return data, prev, next
}
