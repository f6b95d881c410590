// Package votes resolves conflicting per-file shelf signals into one
// authoritative shelf per album.
//
// Each scanned file casts one vote for the shelf its path implies; the table
// keeps a per-album tally and a cached winner. Files may arrive in any order
// and at different times, so the winner is recomputed after every vote. Ties
// go to the shelf that most recently reached the maximal count; this
// nondeterminism under out-of-order delivery is inherent and deliberate.
//
// Entries live until Clear is called for the album (the file-saved hook does
// this). There is no TTL or implicit eviction in Table; that matches desktop
// session scope. NewBounded offers an opt-in LRU cap for hosts that may
// abandon albums mid-session.
package votes
