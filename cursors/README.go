/*
Package cursors provide cursor implementations for traversing collections.

# Summary

A Cursor is a separate object that encapsulates accessing and traversing an aggregate object,
without the client knowing the representation of the aggregate (data structures).
Unlike the position of a conventional iterator, the position of a cursor is observable:
a cursor is either over an element, whose value Current returns,
or over nothing, which is the gap before the first element, after the last element,
or the hole a Remove left behind.
A freshly made cursor is always over nothing, and the first successful Advance
places it over the first traversable element.

Capabilities compose through small interfaces instead of inheritance.
Every cursor can Advance; a ReverseCursor can also Retreat; a RemoveCursor can
delete the element under it from the underlying collection.
A concrete cursor type implements whichever combination its collection can honour.

A cursor borrows its collection and never owns it.
Mutating the collection through any path other than the cursor's own Remove
leaves the cursor in an undefined state, in line with the usual iterator invalidation discipline.

# Resources

https://en.wikipedia.org/wiki/Iterator_pattern
*/
package cursors
