package styles

// EmbeddedStyles exposes the embedded document to tests
func EmbeddedStyles() []byte {
	return embeddedStyles
}
