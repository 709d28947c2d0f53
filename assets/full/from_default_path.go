package full

import (
	"badc0de.net/pkg/go-wad/assets"
	"badc0de.net/pkg/go-wad/paths"

	"github.com/pkg/errors"
)

// defaultArchiveNames are the archive file names probed, shareware first
// since that is what test setups usually have around.
var defaultArchiveNames = []string{
	"doom1.wad",
	"DOOM1.WAD",
	"doom.wad",
	"DOOM.WAD",
	"doom2.wad",
	"DOOM2.WAD",
}

// FromDefaultPath finds an archive under one of the well-known file names
// using the paths package and decodes it into a registry.
//
// Appropriate for tests or web frontends. Inappropriate for servers or
// clients where the path should be specifiable by the user on the command
// line; those go through SetupFilePathFlags and FromFilePathFlags.
func FromDefaultPath() (*assets.Registry, error) {
	for _, name := range defaultArchiveNames {
		if path := paths.Find(name); path != "" {
			return FromPath(path)
		}
	}
	return nil, errors.New("no archive found under any default name")
}
