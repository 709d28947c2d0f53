// Package imageprint dumps decoded assets on the terminal. UNSUPPORTED
// debug package.
//
// Wall patches and sprites are mostly transparent around the edges, so
// the plain-escape printers render transparent pixels as unstyled blanks
// rather than black. This package has an API with no stability
// guarantees.
package imageprint

import (
	"fmt"
	"image"
	ic "image/color"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

// cell prints one pixel as a two-column block, via gookit for 256-color
// terminals or raw escapes for 24-bit ones.
func cell(col ic.Color, trueColor, blanks bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}
	body := "  "
	if !blanks {
		switch lum := ((cR + cG + cB) / 3) >> 8; {
		case lum < 32:
			body = ".."
		case lum < 64:
			body = "--"
		case lum < 128:
			body = "=="
		default:
			body = "##"
		}
	}
	if trueColor {
		fmt.Printf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), body)
	} else {
		color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Printf("%s", body)
	}
}

func printCells(i image.Image, trueColor, blanks bool) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cell(i.At(x, y), trueColor, blanks)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// Print24bit draws an image with 24-bit background escape sequences.
func Print24bit(i image.Image, blanks bool) {
	printCells(i, true, blanks)
}

// Print256Color draws an image using 256-color escape sequences.
func Print256Color(i image.Image, blanks bool) {
	printCells(i, false, blanks)
}

// PrintRasTerm draws an image inline in Kitty, iTerm2/WezTerm or any
// sixel-capable terminal, quantizing down for the sixel path. It prints
// nothing on terminals without a known image protocol.
func PrintRasTerm(i image.Image) {
	switch {
	case rasterm.IsTermKitty():
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
		fmt.Printf("\n")
	case rasterm.IsTermItermWez():
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
		fmt.Printf("\n")
	default:
		if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
			paletted := image.NewPaletted(i.Bounds(), nil)
			q := gogif.MedianCutQuantizer{NumColor: 64}
			q.Quantize(paletted, i.Bounds(), i, image.Point{})
			rasterm.Settings{}.SixelWriteImage(os.Stdout, paletted)
			fmt.Printf("\n")
		}
	}
}
