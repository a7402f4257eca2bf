// Package conv provides a schema-driven value converter.
// A Registry maps a schema's primitive type and logical name to a Handler that turns
// text or a JSON-like node into the typed value a record field may hold:
// booleans, fixed width numbers, strings, bytes, decimals, dates, times, timestamps,
// arrays, maps and structs. Custom logical types are added with Register.
package conv
