// Package wad reads DOOM's packed data archives, known as WAD files.
//
// A WAD file starts with a 12-byte header (a 4-byte type tag, a lump
// count and a directory offset), and carries a directory of named byte
// ranges called lumps. The format is documented in The Unofficial DOOM
// Specs: http://www.gamers.org/dhs/helpdocs/dmsp1666.html
//
// This package only locates and reads lumps; interpreting a lump's
// payload is the task of the per-format packages (pic, flat, pal,
// texture, sprite).
package wad
