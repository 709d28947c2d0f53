// Package web serves decoded assets over HTTP for previewing in a
// browser: individual patches, flats, sprites and composited wall
// textures as PNG, and sprite animations as GIF.
package web

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"strconv"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-wad/assets"
	"badc0de.net/pkg/go-wad/sprite"
)

// Handler serves one loaded registry. The registry is read-only by the
// time it gets here, so handlers need no locking.
type Handler struct {
	reg *assets.Registry
}

// NewHandler constructs a web handler over the passed registry.
func NewHandler(reg *assets.Registry) *Handler {
	return &Handler{reg: reg}
}

// InstallHandlers registers all preview routes on the passed router.
func (h *Handler) InstallHandlers(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/patch/{name}", h.patchHandler)
	r.HandleFunc("/flat/{name}", h.flatHandler)
	r.HandleFunc("/texture/{name}", h.textureHandler)
	r.HandleFunc("/sprite/{name}", h.spriteHandler)
	r.HandleFunc("/sprite/{prefix}/anim", h.spriteAnimHandler)
}

// palette reads the ?pal= query parameter, defaulting to palette 0.
func palette(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("pal"))
	if err != nil || p < 0 || p > 13 {
		return 0
	}
	return p
}

// servePNG writes an image as PNG, honoring the ?scale= query parameter.
func servePNG(w http.ResponseWriter, r *http.Request, name string, img image.Image) {
	if s, err := strconv.Atoi(r.URL.Query().Get("scale")); err == nil && s > 1 && s <= 16 {
		sz := img.Bounds().Size()
		img = resize.Resize(uint(sz.X*s), uint(sz.Y*s), img, resize.NearestNeighbor)
	}

	etag := fmt.Sprintf(`W/"1:%s:%s:%s"`, name, r.URL.Query().Get("pal"), r.URL.Query().Get("scale"))
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) patchHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	p, ok := h.reg.Patch(name)
	if !ok {
		http.Error(w, "no such patch", http.StatusNotFound)
		return
	}
	servePNG(w, r, "patch:"+name, p.Picture().Image(h.reg.Palettes(), palette(r)))
}

func (h *Handler) flatHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	f, ok := h.reg.Flat(name)
	if !ok {
		http.Error(w, "no such flat", http.StatusNotFound)
		return
	}
	servePNG(w, r, "flat:"+name, f.RGBA(h.reg.Palettes(), palette(r)))
}

func (h *Handler) textureHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	img, err := h.reg.RenderTexture(name, palette(r))
	if err != nil {
		glog.Errorf("rendering texture %q: %v", name, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	servePNG(w, r, "texture:"+name, img)
}

func (h *Handler) spriteHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s, ok := h.reg.Sprite(name)
	if !ok {
		http.Error(w, "no such sprite", http.StatusNotFound)
		return
	}
	rot := 0
	if q := r.URL.Query().Get("rot"); q != "" {
		rot, _ = strconv.Atoi(q)
		// ignore invalid rot
	}
	if rot < 0 || rot > 8 {
		rot = 0
	}
	servePNG(w, r, "sprite:"+name, s.RGBA(uint8(rot), h.reg.Palettes(), palette(r)))
}

// spriteAnimHandler serves all frames of a sprite family at one rotation
// slot as an animated GIF.
func (h *Handler) spriteAnimHandler(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]
	rot := 0
	if q := r.URL.Query().Get("rot"); q != "" {
		rot, _ = strconv.Atoi(q)
	}
	if rot < 0 || rot > 8 {
		rot = 0
	}
	seq := h.reg.SpriteFrames(prefix)[rot]
	if len(seq) == 0 {
		http.Error(w, "no frames for sprite", http.StatusNotFound)
		return
	}

	anim := gif.GIF{}
	delay := int(sprite.DefaultFrameDuration.Milliseconds() / 10) // GIF delays tick in 1/100s
	q := quantize.MedianCutQuantizer{}
	for _, frame := range seq {
		s, ok := h.reg.SpriteFor(prefix, frame, uint8(rot))
		if !ok {
			continue
		}
		img := s.RGBA(uint8(rot), h.reg.Palettes(), palette(r))
		plt := q.Quantize(make([]color.Color, 0, 256), img)
		pimg := image.NewPaletted(img.Bounds(), plt)
		draw.Draw(pimg, img.Bounds(), img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, pimg)
		anim.Delay = append(anim.Delay, delay)
	}
	if len(anim.Image) == 0 {
		http.Error(w, "no drawable frames", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.WriteHeader(http.StatusOK)
	gif.EncodeAll(w, &anim)
}
