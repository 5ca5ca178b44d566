// Package kind defines the closed set of validation failure kinds.
//
// A Kind is an immutable, comparable value that names a failure and carries
// only the parameters needed to render it (a minimum length, a maximum value,
// a formatted date bound). Kinds never carry rendered text; turning a kind into
// a message is the job of a resolver, which looks the kind up by Code and
// substitutes its Params into a locale template.
//
// Two kinds are equal when they have the same variant and the same parameters:
//
//	kind.MinLength{Min: 8} == kind.MinLength{Min: 8} // true
//
// Custom covers caller-defined validators without opening the set to
// arbitrary implementations.
package kind
