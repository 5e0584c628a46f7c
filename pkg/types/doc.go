// Package types defines the configuration, script and journal entity types
// shared by the ownlists CLI and its storage, plus their standard errors.
// The list packages themselves do not depend on it.
package types
