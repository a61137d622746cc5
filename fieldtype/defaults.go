package fieldtype

import "github.com/dmitrymomot/fieldkit"

// Defaults returns one instance of every built-in field type, suitable for
// seeding a registry:
//
//	reg := fieldkit.NewRegistry(fieldtype.Defaults()...)
//
// The gallery type is created without a resolver; hosts that need attachment
// inspection register their own via NewGallery.
func Defaults(opts ...DefaultsOption) []fieldkit.Type {
	cfg := defaultsConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return []fieldkit.Type{
		NewText(),
		NewTextarea(),
		NewEmail(),
		NewURL(),
		NewPhone(),
		NewNumber(),
		NewCurrency(cfg.currency...),
		NewSelect(),
		NewRadio(),
		NewCheckbox(),
		NewMultiSelect(),
		NewGallery(cfg.resolver),
	}
}

type defaultsConfig struct {
	resolver MediaResolver
	currency []CurrencyOption
}

// DefaultsOption configures the built-in type set.
type DefaultsOption func(*defaultsConfig)

// WithMediaResolver wires the host's attachment lookup into the gallery type.
func WithMediaResolver(r MediaResolver) DefaultsOption {
	return func(c *defaultsConfig) {
		c.resolver = r
	}
}

// WithCurrencyOptions forwards options to the currency type.
func WithCurrencyOptions(opts ...CurrencyOption) DefaultsOption {
	return func(c *defaultsConfig) {
		c.currency = opts
	}
}

// Register registers every built-in type into the registry.
func Register(reg *fieldkit.Registry, opts ...DefaultsOption) {
	for _, t := range Defaults(opts...) {
		reg.RegisterType(t)
	}
}
