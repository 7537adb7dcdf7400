// Package archetype discovers and parses archetype definitions.
//
// An archetype lives in its own directory under a store root:
//
//	<root>/<name>/manifest.json
//	<root>/<name>/<template files referenced by the manifest>
//
// Manifests may also be written as manifest.yaml or manifest.yml. Every
// manifest is validated against an embedded JSON Schema before it is decoded,
// so a malformed manifest is reported with the offending path and field.
package archetype
