// Package embedded provides access to the embedded theme and content files.
package embedded

import _ "embed"

// LightThemeData contains the embedded light theme YAML data.
//
//go:embed themes/light.yaml
var LightThemeData []byte

// DarkThemeData contains the embedded dark theme YAML data.
//
//go:embed themes/dark.yaml
var DarkThemeData []byte

// ContentData contains the static screen content YAML data.
//
//go:embed content.yaml
var ContentData []byte
