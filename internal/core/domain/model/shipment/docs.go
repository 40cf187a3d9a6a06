// Package shipment contains the Shipment aggregate: the one-package movement
// record with its status machine, driver claim rule, and staff edit surface.
//
// Two authorization tiers mutate a shipment, with deliberately different
// strictness. The driver tier (Claim, ApplyDriverAction) requires ownership
// under a row lock and restricts the action vocabulary. The staff tier
// (SetStatus, SetDriver, Set*) may overwrite anything. Transition legality
// is intentionally not enforced on either tier; see the Status type comment.
package shipment
