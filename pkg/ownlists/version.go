// Package ownlists holds project-wide metadata.
package ownlists

// Version is the release version of the ownlists module and CLI.
const Version = "0.1.0"
