package list

/*

# Doubly linked list over an arena of handle-addressed nodes

This package implements the chain algorithms on top of the arena package:
splice insertion and removal, indexed lookup from the nearer end, deque
operations, linear search, and visitor traversal. The List descriptor is the
familiar (length, head, tail) triple; the nodes themselves live in the
caller's arena.Store and are named only by handles.

## Ownership

Chain membership belongs to the descriptor, not the node: a handle must be
in at most one list at a time, and the handles passed to Remove, InsertBefore
and the node accessors must have been minted by this list's own store.
Violating either is out of contract. Removal orphans a node: its links are
reset to Null but its data field and slot stay live, so the handle remains
dereferenceable forever after.

## Traversal and self-removal

Each and REach capture the follower handle BEFORE invoking the visitor.
A visitor may therefore remove the node it is currently visiting and the
walk still continues at the originally adjacent node. Visitors may mutate
node data in place (SetData, Swap) but must not alter the link structure of
nodes they have not yet visited. Find and RFind take read-only predicates
that must not mutate list structure at all.

*/
