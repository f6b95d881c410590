// Package titleclean strips soundtrack-related suffixes from album titles.
//
// A configurable case-insensitive regular expression removes trailing
// indicator runs such as "(Original Motion Picture Soundtrack)"; a whitelist
// of exact titles (compared case-insensitively after Unicode NFC
// normalization) protects releases whose real name would otherwise be
// mangled. By default only releases typed as soundtracks are touched.
package titleclean
