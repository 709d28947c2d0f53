// Package assets owns every decoded asset of one archive: patches,
// sprites, flats, composite texture definitions, and the palette and
// shading singletons, all keyed by lump name.
//
// A Registry is constructed explicitly and passed to whoever renders; it
// is populated once at load time and safe to share read-only afterwards.
// Nothing in here locks: if several goroutines must load into one
// registry, the callers synchronize.
package assets

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/bradfitz/iter"

	"badc0de.net/pkg/go-wad/flat"
	"badc0de.net/pkg/go-wad/pal"
	"badc0de.net/pkg/go-wad/pic"
	"badc0de.net/pkg/go-wad/sprite"
	"badc0de.net/pkg/go-wad/texture"
)

// ErrNotFound indicates a registry lookup miss by name.
var ErrNotFound = errors.New("asset not found")

// Registry is the name-keyed store of decoded assets. Adds are
// append-only and first-loaded wins on duplicate names, matching the
// archive's own first-match lump lookup.
type Registry struct {
	palettes *pal.PaletteSet
	shading  *pal.ShadingSet

	patches  map[string]*pic.Patch
	sprites  map[string]*sprite.Sprite
	flats    map[string]*flat.Flat
	textures map[string]*texture.CompositeTexture

	patchNames   []string
	spriteNames  []string
	flatNames    []string
	textureNames []string
}

// New creates an empty registry.
func New() (*Registry, error) {
	return &Registry{
		patches:  map[string]*pic.Patch{},
		sprites:  map[string]*sprite.Sprite{},
		flats:    map[string]*flat.Flat{},
		textures: map[string]*texture.CompositeTexture{},
	}, nil
}

// key canonicalizes a lump name for registry lookup. Lump names are
// stored upper-case; a few texture references are not.
func key(name string) string {
	return strings.ToUpper(name)
}

// AddPaletteSet installs the PLAYPAL singleton.
func (r *Registry) AddPaletteSet(p *pal.PaletteSet) { r.palettes = p }

// AddShadingSet installs the COLORMAP singleton.
func (r *Registry) AddShadingSet(s *pal.ShadingSet) { r.shading = s }

// Palettes returns the PLAYPAL singleton, nil before AddPaletteSet.
func (r *Registry) Palettes() *pal.PaletteSet { return r.palettes }

// Shading returns the COLORMAP singleton, nil before AddShadingSet.
func (r *Registry) Shading() *pal.ShadingSet { return r.shading }

// AddPatch registers a decoded patch. A name already present is kept.
func (r *Registry) AddPatch(name string, p *pic.Patch) {
	k := key(name)
	if _, ok := r.patches[k]; ok {
		return
	}
	r.patches[k] = p
	r.patchNames = append(r.patchNames, k)
}

// Patch resolves a patch by name. Satisfies texture.PatchRegistry.
func (r *Registry) Patch(name string) (*pic.Patch, bool) {
	p, ok := r.patches[key(name)]
	return p, ok
}

// AddSprite registers a decoded sprite under its full lump name.
func (r *Registry) AddSprite(s *sprite.Sprite) {
	k := key(s.Name().String())
	if _, ok := r.sprites[k]; ok {
		return
	}
	r.sprites[k] = s
	r.spriteNames = append(r.spriteNames, k)
}

// Sprite resolves a sprite by full lump name.
func (r *Registry) Sprite(name string) (*sprite.Sprite, bool) {
	s, ok := r.sprites[key(name)]
	return s, ok
}

// AddFlat registers a decoded flat.
func (r *Registry) AddFlat(name string, f *flat.Flat) {
	k := key(name)
	if _, ok := r.flats[k]; ok {
		return
	}
	r.flats[k] = f
	r.flatNames = append(r.flatNames, k)
}

// Flat resolves a flat by name.
func (r *Registry) Flat(name string) (*flat.Flat, bool) {
	f, ok := r.flats[key(name)]
	return f, ok
}

// AddTexture registers a parsed composite texture definition.
func (r *Registry) AddTexture(t *texture.CompositeTexture) {
	k := key(t.Name)
	if _, ok := r.textures[k]; ok {
		return
	}
	r.textures[k] = t
	r.textureNames = append(r.textureNames, k)
}

// Texture resolves a composite texture definition by name.
func (r *Registry) Texture(name string) (*texture.CompositeTexture, bool) {
	t, ok := r.textures[key(name)]
	return t, ok
}

// PatchNames returns registered patch names in load order.
func (r *Registry) PatchNames() []string { return r.patchNames }

// SpriteNames returns registered sprite lump names in load order.
func (r *Registry) SpriteNames() []string { return r.spriteNames }

// FlatNames returns registered flat names in load order.
func (r *Registry) FlatNames() []string { return r.flatNames }

// TextureNames returns registered texture names in load order.
func (r *Registry) TextureNames() []string { return r.textureNames }

// RenderTexture looks up a texture definition and composites it against
// this registry's patches and palettes.
func (r *Registry) RenderTexture(name string, palette int) (*image.RGBA, error) {
	t, ok := r.Texture(name)
	if !ok {
		return nil, fmt.Errorf("%w: texture %q", ErrNotFound, name)
	}
	return t.Render(r, r.palettes, palette)
}

// SpriteFor resolves the sprite serving the passed prefix, frame letter
// and rotation slot, considering rotation-0 lumps, mirror pairs and alias
// pairs. First loaded wins when several lumps qualify.
func (r *Registry) SpriteFor(prefix string, frame byte, rotation uint8) (*sprite.Sprite, bool) {
	p := key(prefix)
	for _, name := range r.spriteNames {
		s := r.sprites[name]
		n := s.Name()
		if n.Prefix != p || !s.Covers(rotation) {
			continue
		}
		if n.First.Frame == frame {
			return s, true
		}
		if n.Second != nil && n.Second.Frame == frame && n.Second.Rotation == rotation {
			return s, true
		}
	}
	return nil, false
}

// SpriteFrames collects, for each of the nine rotation slots, the
// ascending de-duplicated frame letters available for the passed
// 4-character sprite prefix. Feed a slot's sequence to sprite.NewAnimation
// to animate an instance.
func (r *Registry) SpriteFrames(prefix string) [9]sprite.Sequence {
	var raw [9][]byte
	p := key(prefix)
	for _, name := range r.spriteNames {
		s := r.sprites[name]
		n := s.Name()
		if n.Prefix != p {
			continue
		}
		for rot := range iter.N(9) {
			if !s.Covers(uint8(rot)) {
				continue
			}
			raw[rot] = append(raw[rot], n.First.Frame)
			if n.Second != nil && n.Second.Rotation == uint8(rot) {
				raw[rot] = append(raw[rot], n.Second.Frame)
			}
		}
	}
	var out [9]sprite.Sequence
	for i := range raw {
		out[i] = sprite.NewSequence(raw[i])
	}
	return out
}
