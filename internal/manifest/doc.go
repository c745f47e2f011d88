// Package manifest handles parsing and validation of answers manifests: YAML
// files listing puzzle cases and their expected answers. Validation runs
// against an embedded JSON Schema; CheckVersion enforces the manifest's
// minimum CLI version.
package manifest
