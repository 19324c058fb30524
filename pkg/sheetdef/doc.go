// Package sheetdef builds property sheets from declarative definitions.
//
// An application can describe a settings panel in a YAML or TOML file and
// construct the registry from it at startup:
//
//	title: Audio
//	properties:
//	  - name: Master Volume
//	    widget: slider
//	    type: f32
//	    min: 0
//	    max: 1
//	    step: 0.05
//	    default: 0.8
//	  - widget: separator
//	  - name: Mute
//	    widget: switch
//
// Definitions are construction-time input only; the package never
// persists property values back to disk.
package sheetdef
