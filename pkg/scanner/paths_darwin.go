//go:build darwin

package scanner

// BundlesAreDirectories is true on macOS, where a .clap bundle is a
// CFBundle directory.
const BundlesAreDirectories = true

func defaultSearchPaths() []string {
	return []string{
		"/Library/Audio/Plug-Ins/CLAP",
		"~/Library/Audio/Plug-Ins/CLAP",
	}
}
