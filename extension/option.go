package extension

type Option func(*Types)

// WithAlias resolves the package qualifier alias to pkgPath during Lookup.
func WithAlias(alias, pkgPath string) Option {
	return func(t *Types) {
		t.aliases[alias] = pkgPath
	}
}
