// Package config defines the format-agnostic league configuration along
// with the Loader interface that format-specific packages implement.
//
// The `config.League` model is what the app hands to the pipeline and the
// report renderer. Concrete loaders, such as the HCL one, live in separate
// packages.
package config
