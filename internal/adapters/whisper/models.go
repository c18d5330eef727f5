package whisper

// DefaultModel is the model size used when none is requested.
const DefaultModel = "medium"

// ModelSizes lists the accepted model size identifiers.
var ModelSizes = []string{"tiny", "base", "small", "medium", "large-v3"}

// IsValidModel reports whether size is one of the accepted identifiers.
func IsValidModel(size string) bool {
	for _, s := range ModelSizes {
		if s == size {
			return true
		}
	}
	return false
}
