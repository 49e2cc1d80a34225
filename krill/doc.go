// Package krill implements the lexical scanner for the Krill Lisp dialect.
// It takes an io.Reader providing UTF-8 source, which is tokenized through
// repeated calls to Scan. The supported token classes are:
//   - Identifiers (symbols): letters plus the Lisp symbol runes, including
//     compound forms such as `*host-language*`, `true?`, `<=`, and the
//     reader digraphs `~@` and `#{`.
//   - Keywords: `:`-prefixed identifier-like tokens such as `:hello-world`.
//   - Integers in decimal, hexadecimal (0x), octal (0o or a leading 0), and
//     binary (0b) form, with optional `_` digit separators.
//   - Floats with fraction and/or exponent, including hexadecimal floats
//     with a `p` exponent.
//   - Strings with the usual backslash escapes, and raw strings delimited
//     by `¬` where a doubled delimiter stands for one literal `¬`.
//   - Line comments starting with `;` (skipped by default).
//
// Each class can be switched off through the Mode bit mask, in which case
// its introducing character comes back as an ordinary single-character
// token. Malformed input never stops a scan: the scanner reports the
// problem, counts it in ErrorCount, and returns a best-effort token. If the
// first character in the source is a UTF-8 byte order mark it is discarded,
// and the NUL character is not allowed.
package krill
