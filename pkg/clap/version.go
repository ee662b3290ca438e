package clap

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is a CLAP ABI version triple.
type Version struct {
	Major    uint32
	Minor    uint32
	Revision uint32
}

// compatibleRange mirrors clap_version_is_compatible: any 1.x or later.
var compatibleRange = mustConstraint(">= 1.0.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Semver converts the triple for comparisons.
func (v Version) Semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Revision), "", "")
}

// Compatible reports whether a host speaking CLAP 1.x can use a module
// declaring this version.
func (v Version) Compatible() bool {
	return compatibleRange.Check(v.Semver())
}
