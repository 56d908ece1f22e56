package types

// HashSaltKey is the context entry that always holds the site secret
const HashSaltKey = "hash_salt"

// RawParameters maps a parameter name to a scalar or a sequence of scalars,
// exactly as decoded from the parameter file.
type RawParameters map[string]interface{}

// TemplateContext maps a parameter name to the text substituted into the
// template.
type TemplateContext map[string]string
