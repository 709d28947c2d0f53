package paths

import (
	"flag"
)

// SetupFilePathFlag creates a string flag with the passed name, defaulting
// to wherever Find locates the file. If the file is nowhere to be found
// the flag defaults to an empty string and the user must supply it.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find(fileName), "Path to "+fileName)
}
