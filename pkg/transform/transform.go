package transform

import (
	"io"

	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// Transformer builds template contexts. Each transformer reads from its
// own random source.
type Transformer struct {
	random io.Reader
}

// New creates a Transformer. A nil random means crypto/rand.
func New(random io.Reader) *Transformer {
	return &Transformer{random: random}
}

// Transform converts raw parameters into a template context. generated
// reports whether hash_salt was created because the parameters lacked one
// (absent, or null).
func (t *Transformer) Transform(raw types.RawParameters) (ctx types.TemplateContext, generated bool, err error) {
	logger := logging.GetLogger("transform")
	ctx = make(types.TemplateContext, len(raw)+1)

	sequences := 0
	for key, value := range raw {
		if elements, ok := sequenceElements(value); ok {
			ctx[key] = FormatSequence(elements)
			sequences++
			continue
		}
		ctx[key] = FormatScalar(value)
	}

	if value, ok := raw[types.HashSaltKey]; !ok || value == nil {
		salt, err := GenerateHashSalt(t.random)
		if err != nil {
			return nil, false, err
		}
		ctx[types.HashSaltKey] = salt
		generated = true
	}

	logger.Debug().
		Int("keys", len(ctx)).
		Int("sequences", sequences).
		Bool("hash_salt_generated", generated).
		Msg("Template context built")

	return ctx, generated, nil
}
