// Package urlhelper configures the generated source file that turns an image
// name into its public URL. Rendering lives in feature/provision.
package urlhelper
