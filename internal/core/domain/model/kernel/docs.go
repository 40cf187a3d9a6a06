// Package kernel contains the shared value objects of the domain model:
// prefixed sequential entity identifiers (EntityKind/EntityID) and the
// request actor (Actor/Role).
//
// Identifiers are human-readable sequences such as CL000007 or SHP003.
// Allocation itself lives behind the ports.SequenceAllocator port; this
// package only defines the kinds, their formatting, and tolerant parsing
// and comparison of already-allocated identifiers.
package kernel
