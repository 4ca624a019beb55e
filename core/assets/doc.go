// Package assets holds the configuration of the local image directory.
package assets
