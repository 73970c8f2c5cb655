// Package textblock manages named, delimiter-bounded blocks of text
// inside an otherwise user-owned configuration file.
//
// A block is three parts: an exact begin line carrying the block's name,
// the body, and an exact end line. At most one block per name exists in a
// file; upserting an existing name replaces the body in place without
// disturbing surrounding content. All mutations go through a temporary
// file followed by an atomic rename, so a crash mid-write never leaves
// the target truncated.
//
// RemoveLinesContaining is the legacy removal mechanism from an earlier
// wiring generation. It deletes every line containing a fixed substring
// with no notion of block structure. It is kept for uninstalling wiring
// written by older releases; new wiring always uses named blocks.
package textblock
