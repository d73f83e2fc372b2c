// Package validator checks a composed post against the rules of every
// selected platform.
//
// Each platform is validated independently using its own field schema
// (not the merged field set), followed by a table of platform-specific
// cross-field [Rule]s. Errors are returned as data keyed by platform:
//
//	errs := validator.Validate([]platform.Key{platform.Twitter}, data)
//	if !errs.Empty() {
//		for _, msg := range errs.For(platform.Twitter) {
//			fmt.Println(msg)
//		}
//	}
//
// Selection-level problems live under [GeneralKey] and are produced by
// [CheckSelection], which callers run before Validate.
//
// Use [Reporter] to render Errors as colorized text or JSON.
package validator
