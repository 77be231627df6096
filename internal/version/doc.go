// ABOUTME: Version package
// ABOUTME: Product and build identification strings
// Package version exposes the product name, manufacturer and build version
// shown in the UI header and printed by -version.
package version
