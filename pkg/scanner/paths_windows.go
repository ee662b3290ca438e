//go:build windows

package scanner

// BundlesAreDirectories is false where a .clap bundle is a DLL.
const BundlesAreDirectories = false

func defaultSearchPaths() []string {
	return []string{
		`%COMMONPROGRAMFILES%\CLAP`,
		`%LOCALAPPDATA%\Programs\Common\CLAP`,
	}
}
