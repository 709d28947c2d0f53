// wadprint prints a named asset out of a WAD archive on the terminal:
// a patch, a flat, a sprite lump or a composited wall texture.
//
// Example:
//
//	wadprint --wad_path doom1.wad --texture STARTAN3
//	wadprint --wad_path doom1.wad --sprite TROOA1 --col256
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-wad/assets/full"
	"badc0de.net/pkg/go-wad/imageprint"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"golang.org/x/crypto/ssh/terminal"
)

var (
	patchName   = flag.String("patch", "", "name of patch to print")
	flatName    = flag.String("flat", "", "name of flat to print")
	spriteName  = flag.String("sprite", "", "lump name of sprite to print")
	textureName = flag.String("texture", "", "name of composite texture to print")
	palNum      = flag.Int("pal", 0, "palette number to resolve colors with (0-13)")
	col256      = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	useRasterm  = flag.Bool("rasterm", false, "whether to print with a terminal image protocol")
	blanks      = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize    = flag.Bool("downsize", true, "whether to shrink wide images to the terminal width")
)

func out(img image.Image) {
	if *downsize {
		if w, _, err := terminal.GetSize(0); err == nil && img.Bounds().Dx() > w/2 {
			img = resize.Thumbnail(uint(w/2), uint(img.Bounds().Dy()), img, resize.NearestNeighbor)
		}
	}
	switch {
	case *useRasterm:
		imageprint.PrintRasTerm(img)
	case *col256:
		imageprint.Print256Color(img, *blanks)
	default:
		imageprint.Print24bit(img, *blanks)
	}
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()

	reg, err := full.FromFilePathFlags()
	if err != nil {
		glog.Exitf("loading archive: %v", err)
	}

	switch {
	case *patchName != "":
		p, ok := reg.Patch(*patchName)
		if !ok {
			glog.Exitf("no patch %q in archive", *patchName)
		}
		out(p.RGBA(reg.Palettes(), *palNum))
	case *flatName != "":
		f, ok := reg.Flat(*flatName)
		if !ok {
			glog.Exitf("no flat %q in archive", *flatName)
		}
		out(f.RGBA(reg.Palettes(), *palNum))
	case *spriteName != "":
		s, ok := reg.Sprite(*spriteName)
		if !ok {
			glog.Exitf("no sprite %q in archive", *spriteName)
		}
		out(s.RGBA(s.Name().First.Rotation, reg.Palettes(), *palNum))
	case *textureName != "":
		img, err := reg.RenderTexture(*textureName, *palNum)
		if err != nil {
			glog.Exitf("rendering texture %q: %v", *textureName, err)
		}
		out(img)
	default:
		fmt.Fprintln(os.Stderr, "pass one of --patch, --flat, --sprite or --texture")
		os.Exit(2)
	}
}
