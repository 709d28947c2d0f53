package full

import (
	"badc0de.net/pkg/go-wad/assets"
	"badc0de.net/pkg/go-wad/paths"
)

var wadPath string

// FlagWadPath is the name of the flag SetupFilePathFlags registers.
const FlagWadPath = "wad_path"

// SetupFilePathFlags registers --wad_path, defaulting to wherever the
// paths package finds a known archive. Call before flag.Parse.
func SetupFilePathFlags() {
	name := defaultArchiveNames[0]
	for _, candidate := range defaultArchiveNames {
		if paths.Find(candidate) != "" {
			name = candidate
			break
		}
	}
	paths.SetupFilePathFlag(name, FlagWadPath, &wadPath)
}

// FromFilePathFlags builds a registry from the archive the --wad_path flag
// points at. Flags need to be registered and parsed by the time this is
// invoked.
func FromFilePathFlags() (*assets.Registry, error) {
	return FromPath(wadPath)
}

// WadPathFlagValue returns the parsed --wad_path value.
func WadPathFlagValue() string {
	return wadPath
}
