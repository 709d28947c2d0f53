// Package pic decodes the column/post picture encoding shared by sprite
// and patch lumps.
//
// A picture is an 8-byte header (width, height and two signed drawing
// offsets), a table of per-column byte offsets, and one post stream per
// column. A post is a vertical run of opaque pixels: a starting row, a run
// length, one padding byte, the pixel bytes, and a trailing padding byte.
// A row byte of 0xFF terminates the column. Rows not covered by any post
// are transparent.
//
// Pictures parse untrusted offset-addressed data: every column offset is
// bounds checked, a post that would run past the buffer fails the decode,
// and post iteration is capped so that cyclic or self-overlapping offset
// tables cannot hang the decoder.
package pic
