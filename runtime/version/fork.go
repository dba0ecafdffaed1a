package version

const (
	Phase0 = iota
	Altair
	Bellatrix
	Capella
	Deneb
)

var versionToString = map[int]string{
	Phase0:    "phase0",
	Altair:    "altair",
	Bellatrix: "bellatrix",
	Capella:   "capella",
	Deneb:     "deneb",
}

// allVersions is populated in init()
var allVersions []int

// String returns the canonical string form of a version.
// Unrecognized versions won't generate an error and are represented by the string "unknown version".
func String(version int) string {
	name, ok := versionToString[version]
	if !ok {
		return "unknown version"
	}
	return name
}

// All returns a list of all known fork versions, in ascending order.
func All() []int {
	return allVersions
}

func init() {
	allVersions = make([]int, len(versionToString))
	for v := range versionToString {
		allVersions[v] = v
	}
}
