// Package sanitizer transforms user input before it is stored or logged.
//
// Transforms are plain func(T) T values that can be chained with Apply or
// stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(sanitizer.Limit(256))
//	v := clean(raw)
//
// The masking helpers hide personal data in log output.
package sanitizer
