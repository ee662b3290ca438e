//go:build !darwin && !windows

package scanner

// BundlesAreDirectories is false where a .clap bundle is a shared object.
const BundlesAreDirectories = false

func defaultSearchPaths() []string {
	return []string{
		"/usr/lib/clap",
		"~/.clap",
	}
}
