package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"net/http"

	"github.com/golang/glog"
	"github.com/vincent-petithory/dataurl"
)

// indexThumbLimit caps how many inline thumbnails each section embeds;
// the full lists link to the individual endpoints instead.
const indexThumbLimit = 24

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<title>go-wad asset preview</title>
<h1>go-wad asset preview</h1>
{{range .Sections}}
<h2>{{.Title}} ({{.Total}})</h2>
{{range .Entries}}<a href="{{.Href}}" title="{{.Name}}"><img src="{{.Thumb}}" alt="{{.Name}}"></a>
{{end}}
{{end}}`))

type indexEntry struct {
	Name  string
	Href  string
	Thumb template.URL
}

type indexSection struct {
	Title   string
	Total   int
	Entries []indexEntry
}

// thumb encodes an image as an inline PNG data URL.
func thumb(img image.Image) (template.URL, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return template.URL(dataurl.EncodeBytes(buf.Bytes())), nil
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	pals := h.reg.Palettes()

	var page struct{ Sections []indexSection }

	sec := indexSection{Title: "Textures", Total: len(h.reg.TextureNames())}
	for _, name := range h.reg.TextureNames() {
		if len(sec.Entries) >= indexThumbLimit {
			break
		}
		img, err := h.reg.RenderTexture(name, 0)
		if err != nil {
			glog.V(1).Infof("index: texture %q: %v", name, err)
			continue
		}
		t, err := thumb(img)
		if err != nil {
			continue
		}
		sec.Entries = append(sec.Entries, indexEntry{Name: name, Href: "/texture/" + name, Thumb: t})
	}
	page.Sections = append(page.Sections, sec)

	sec = indexSection{Title: "Flats", Total: len(h.reg.FlatNames())}
	for _, name := range h.reg.FlatNames() {
		if len(sec.Entries) >= indexThumbLimit {
			break
		}
		f, _ := h.reg.Flat(name)
		t, err := thumb(f.RGBA(pals, 0))
		if err != nil {
			continue
		}
		sec.Entries = append(sec.Entries, indexEntry{Name: name, Href: "/flat/" + name, Thumb: t})
	}
	page.Sections = append(page.Sections, sec)

	sec = indexSection{Title: "Sprites", Total: len(h.reg.SpriteNames())}
	for _, name := range h.reg.SpriteNames() {
		if len(sec.Entries) >= indexThumbLimit {
			break
		}
		s, _ := h.reg.Sprite(name)
		t, err := thumb(s.RGBA(s.Name().First.Rotation, pals, 0))
		if err != nil {
			continue
		}
		sec.Entries = append(sec.Entries, indexEntry{Name: name, Href: "/sprite/" + name, Thumb: t})
	}
	page.Sections = append(page.Sections, sec)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, page); err != nil {
		glog.Errorf("index render: %v", err)
		http.Error(w, fmt.Sprintf("index render: %v", err), http.StatusInternalServerError)
	}
}
