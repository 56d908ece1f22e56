package parameters

import (
	"fmt"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/types"
	"gopkg.in/yaml.v3"
)

// Parser turns parameter file content into raw parameters
type Parser interface {
	Parse(content []byte) (types.RawParameters, error)
}

// YAMLParser parses parameter files with yaml.v3
type YAMLParser struct{}

// NewYAMLParser creates the default parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a YAML mapping document. An empty document yields an
// empty mapping, which the generator treats as no parameters. Any other
// non-mapping top level is a parse error.
func (p *YAMLParser) Parse(content []byte) (types.RawParameters, error) {
	var doc interface{}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid parameter file")
	}

	switch v := doc.(type) {
	case nil:
		return types.RawParameters{}, nil
	case map[string]interface{}:
		return types.RawParameters(v), nil
	case map[interface{}]interface{}:
		params := make(types.RawParameters, len(v))
		for key, value := range v {
			params[fmt.Sprint(key)] = value
		}
		return params, nil
	default:
		return nil, errors.Newf(errors.ErrParse, "parameter file must be a mapping at top level, got %T", doc)
	}
}
