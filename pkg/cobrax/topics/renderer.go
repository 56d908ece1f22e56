package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render formats content; ext is the topic file extension
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render implements Renderer
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
