package assets

import (
	"fmt"

	"badc0de.net/pkg/go-wad/flat"
	"badc0de.net/pkg/go-wad/pal"
	"badc0de.net/pkg/go-wad/pic"
	"badc0de.net/pkg/go-wad/sprite"
	"badc0de.net/pkg/go-wad/texture"
	"badc0de.net/pkg/go-wad/wad"

	"github.com/golang/glog"
)

// FromArchive decodes every renderable asset of the archive into a fresh
// registry: the PLAYPAL and COLORMAP tables, the patches listed in PNAMES,
// the TEXTURE1/TEXTURE2 definitions, the flats between F_START and F_END
// and the sprites between S_START and S_END.
//
// The two tables and PNAMES are load-bearing, so their failures abort the
// load. Individual patch, flat or sprite lumps fail independently: a
// malformed lump is logged and skipped, and its siblings still load. A
// skipped patch resurfaces as a render-time miss on any texture placing
// it.
func FromArchive(a *wad.Archive) (*Registry, error) {
	r, err := New()
	if err != nil {
		return nil, err
	}

	b, err := a.ReadName("PLAYPAL")
	if err != nil {
		return nil, fmt.Errorf("loading PLAYPAL: %w", err)
	}
	palettes, err := pal.NewPaletteSet(b)
	if err != nil {
		return nil, fmt.Errorf("decoding PLAYPAL: %w", err)
	}
	r.AddPaletteSet(palettes)

	b, err = a.ReadName("COLORMAP")
	if err != nil {
		return nil, fmt.Errorf("loading COLORMAP: %w", err)
	}
	shading, err := pal.NewShadingSet(b)
	if err != nil {
		return nil, fmt.Errorf("decoding COLORMAP: %w", err)
	}
	r.AddShadingSet(shading)

	names, err := loadPatches(a, r)
	if err != nil {
		return nil, err
	}
	if err := loadTextures(a, r, names); err != nil {
		return nil, err
	}
	loadFlats(a, r)
	loadSprites(a, r)
	return r, nil
}

func loadPatches(a *wad.Archive, r *Registry) (texture.NameTable, error) {
	b, err := a.ReadName("PNAMES")
	if err != nil {
		return nil, fmt.Errorf("loading PNAMES: %w", err)
	}
	names, err := texture.ParsePatchNames(b)
	if err != nil {
		return nil, fmt.Errorf("decoding PNAMES: %w", err)
	}
	for _, name := range names {
		b, err := a.ReadName(name)
		if err != nil {
			glog.Warningf("patch %q: %v; textures placing it will fail to render", name, err)
			continue
		}
		p, err := pic.LoadPatch(b)
		if err != nil {
			glog.Warningf("patch %q: %v; skipped", name, err)
			continue
		}
		r.AddPatch(name, p)
	}
	glog.V(1).Infof("loaded %d of %d patches", len(r.PatchNames()), len(names))
	return names, nil
}

func loadTextures(a *wad.Archive, r *Registry, names texture.NameTable) error {
	for _, lumpName := range []string{"TEXTURE1", "TEXTURE2"} {
		e, ok := a.Find(lumpName)
		if !ok {
			continue // TEXTURE2 only exists in the registered release
		}
		b, err := a.Read(e)
		if err != nil {
			return fmt.Errorf("loading %s: %w", lumpName, err)
		}
		textures, err := texture.ParseTextureLump(b, names)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", lumpName, err)
		}
		for _, t := range textures {
			r.AddTexture(t)
		}
	}
	glog.V(1).Infof("loaded %d texture definitions", len(r.TextureNames()))
	return nil
}

func loadFlats(a *wad.Archive, r *Registry) {
	lumps, err := a.LumpsBetween("F_START", "F_END")
	if err != nil {
		glog.Warningf("no flat section: %v", err)
		return
	}
	for _, e := range lumps {
		if e.Size == 0 {
			continue // nested marker (F1_START etc.)
		}
		b, err := a.Read(e)
		if err != nil {
			glog.Warningf("flat %q: %v; skipped", e.Name, err)
			continue
		}
		f, err := flat.New(b)
		if err != nil {
			glog.Warningf("flat %q: %v; skipped", e.Name, err)
			continue
		}
		r.AddFlat(e.Name.String(), f)
	}
	glog.V(1).Infof("loaded %d flats", len(r.FlatNames()))
}

func loadSprites(a *wad.Archive, r *Registry) {
	lumps, err := a.LumpsBetween("S_START", "S_END")
	if err != nil {
		glog.Warningf("no sprite section: %v", err)
		return
	}
	for _, e := range lumps {
		if e.Size == 0 {
			continue
		}
		b, err := a.Read(e)
		if err != nil {
			glog.Warningf("sprite %q: %v; skipped", e.Name, err)
			continue
		}
		s, err := sprite.New(e.Name.String(), b)
		if err != nil {
			glog.Warningf("sprite %q: %v; skipped", e.Name, err)
			continue
		}
		r.AddSprite(s)
	}
	glog.V(1).Infof("loaded %d sprites", len(r.SpriteNames()))
}
