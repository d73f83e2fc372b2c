// Package platform holds the fixed table of social-media destinations and
// the field schema each one accepts.
//
// The [Registry] is populated once from built-in data and never mutated.
// Use [Default] to obtain it:
//
//	cfg, err := platform.Default().Get(platform.Twitter)
//	if err != nil {
//	    return err
//	}
//	for _, f := range cfg.Fields {
//	    fmt.Println(f.Name, f.Config.Kind())
//	}
//
// # Field Schema
//
// Every field is one of three variants: [TextField], [BooleanField] or
// [FileField]. Consumers switch on the concrete type rather than probing
// optional properties.
//
// # Selection
//
// [Selection] models the user's ordered choice of platforms. Toggling a key
// twice returns it to absent; insertion order drives display order.
//
// # Thread Safety
//
// Registry reads are safe for concurrent use. Selection is not.
package platform
