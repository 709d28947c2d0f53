// Package full builds a fully populated asset registry from a WAD file on
// disk, wiring together archive opening, data file discovery and the
// per-format decoders.
package full

import (
	"badc0de.net/pkg/go-wad/assets"
	"badc0de.net/pkg/go-wad/paths"
	"badc0de.net/pkg/go-wad/wad"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FromPath opens the archive at the passed path and decodes all of its
// renderable assets into a registry. The archive is closed before
// returning; the registry owns every decoded buffer.
func FromPath(wadPath string) (*assets.Registry, error) {
	glog.V(1).Infof("full.FromPath(): opening archive: %q", wadPath)
	f, err := paths.NoFindOpen(wadPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening archive")
	}
	defer f.Close()

	a, err := wad.New(f)
	if err != nil {
		return nil, errors.Wrap(err, "reading archive directory")
	}
	r, err := assets.FromArchive(a)
	if err != nil {
		return nil, errors.Wrap(err, "loading assets from archive")
	}
	return r, nil
}
