package arena

/*

# Flat node arena for handle-addressed doubly linked lists

This package provides the backing store and slot codec for pointer-free
doubly linked lists: a bump allocator over a flat, monotonically growing byte
buffer, holding fixed-size node records addressed by integer handles.

It follows the same "functional primitives" style as the rest of this module:

- small, composable functions
- explicit byte layouts
- index arithmetic instead of native pointers
- a burden of knowledge on the caller for hot paths

## Handles

A Handle is a 1-based slot index into the store. Handle 0 is the reserved
Null sentinel and never names a slot. Handles are only ever minted by
Allocate; passing a handle that did not come from the same store's Allocate
is out of contract and will panic on the slot bounds check.

A Data value is an opaque caller-owned datum reference. The store records and
returns it verbatim and never dereferences it. Zero is NOT reserved for Data;
whether to treat it as a sentinel is the integrator's choice.

## Integrator conversion contract

Callers bind their own record type to Data with a pair of conversions,
toHandle and fromHandle, that must be mutual inverses returning a reference
to the SAME underlying storage (not a copy), so that in-place mutation
through the returned reference is visible on the next lookup. The natural Go
shape is a caller-owned slice with Data carrying the record index; see the
listtesting package for a worked example.

## Slot layouts

Every slot holds the triple (data, prev, next). Two layouts are supported,
selected when the store is created, and externally indistinguishable apart
from their width limits:

  - LayoutPacked: one big-endian 8-byte word per slot. The top bit is
    reserved and always zero; below it the three fields take FieldBits bits
    each. Data values and slot counts are bounded by MaxFieldValue.
  - LayoutUnpacked: three big-endian uint64 fields at byte offsets 0/8/16,
    24 bytes per slot. No data width limit.

## No reclamation

Slots are granted in increasing handle order and never returned to a free
pool. Detaching a node from a chain orphans it: the slot stays live and
addressable for the store's whole lifetime. A caller needing reclamation
discards the entire store and rebuilds.

*/
