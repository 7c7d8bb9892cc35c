package listtesting

import "github.com/forestrie/go-arenalist/arena"

// Record is a sample integrator-owned record type.
type Record struct {
	Serial uint64
	Hits   int
}

// RecordPool is a worked example of the integrator conversion contract. The
// records live in one caller-owned slice and a data handle is the record's
// index, so ToHandle and FromHandle are mutual inverses that are pure index
// casts: FromHandle returns a pointer into the same backing array and
// in-place mutation through it is visible on the next lookup.
//
// Index zero is a legitimate handle here; the pool deliberately does not
// reserve Data(0).
type RecordPool struct {
	records []Record
}

// Add appends a record to the pool and returns its data handle.
func (p *RecordPool) Add(r Record) arena.Data {
	p.records = append(p.records, r)
	return arena.Data(len(p.records) - 1)
}

// FromHandle returns a reference to the record d names.
func (p *RecordPool) FromHandle(d arena.Data) *Record {
	return &p.records[d]
}

// ToHandle returns the data handle for the i'th record. It is the inverse of
// FromHandle over the pool's backing slice.
func (p *RecordPool) ToHandle(i int) arena.Data {
	return arena.Data(i)
}

// Len returns the number of records in the pool.
func (p *RecordPool) Len() int {
	return len(p.records)
}
