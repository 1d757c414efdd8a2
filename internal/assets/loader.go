// Package assets bundles the invoice HTML template and CSS styles into
// the binary and loads them by name.
package assets

// AssetLoader defines the contract for loading CSS styles and HTML templates.
// Implementations may load from embedded assets, filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}

// LoadStyle loads an embedded CSS style by name.
func LoadStyle(name string) (string, error) {
	return NewEmbeddedLoader().LoadStyle(name)
}

// LoadTemplate loads an embedded HTML template by name.
func LoadTemplate(name string) (string, error) {
	return NewEmbeddedLoader().LoadTemplate(name)
}
