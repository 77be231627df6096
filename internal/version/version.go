// ABOUTME: Build identification strings
// ABOUTME: Version is overridden at link time with -ldflags "-X"
package version

import "fmt"

// Product is the user-facing program name
const Product = "Trimmer"

// Version is set by the release build
var Version = "dev"

// String returns the product name with its version
func String() string {
	return fmt.Sprintf("%s %s", Product, Version)
}
