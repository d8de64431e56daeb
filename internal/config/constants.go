package config

const DefaultManifestName = "traitkit.yaml"

// ManifestFileExtensions are all recognized manifest file extensions
var ManifestFileExtensions = []string{".yaml", ".yml"}

// Standard trait names
const (
	EqTraitName      = "Eq"
	OrdTraitName     = "Ord"
	ShowTraitName    = "Show"
	DefaultTraitName = "Default"
	LenTraitName     = "Len"
)

// Standard method names
const (
	IsMethodName      = "is"
	IsntMethodName    = "isnt"
	CompareMethodName = "compare"
	LtMethodName      = "lt"
	LteMethodName     = "lte"
	GtMethodName      = "gt"
	GteMethodName     = "gte"
	ShowMethodName    = "show"
	ValueMethodName   = "value"
	LenMethodName     = "len"
	IsEmptyMethodName = "isEmpty"
)

// HasManifestExt checks if a path ends with a recognized manifest extension.
func HasManifestExt(path string) bool {
	for _, ext := range ManifestFileExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
