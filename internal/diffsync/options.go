package diffsync

// Option configures a [Sync].
type Option func(*options)

type options struct {
	entityName        string
	versionEmptyPatch bool
}

// WithEntityName overrides the entity name used in shadow keys. By default
// it is the Go type name of the entity.
func WithEntityName(name string) Option {
	return func(o *options) {
		o.entityName = name
	}
}

// WithEmptyPatchVersioning makes empty versioned patches go through the
// version checks and count as accepted. A node that diffs on every exchange
// needs its peer to count the empty diffs too.
func WithEmptyPatchVersioning() Option {
	return func(o *options) {
		o.versionEmptyPatch = true
	}
}
