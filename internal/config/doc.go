// Package config provides configuration management for the mkt CLI.
//
// The configuration holds defaults applied when scaffolding and validating
// marketplaces. It never describes a marketplace itself; that lives in
// .claude-plugin/marketplace.json.
//
// # Configuration File
//
// config.yaml is searched in the current directory, then in
// $MKT_CONFIG_DIR or ~/.config/mkt. Every key may also be set through the
// environment with the MKT_ prefix (owner.name becomes MKT_OWNER_NAME).
//
//	version: 1
//	owner:
//	  name: Jane Doe
//	  email: jane@example.com
//	license: Apache-2.0
//	strict: false
//	output: text
//
// # Loading Configuration
//
// Call [Init] once, then [Load]. An empty path searches the default
// locations and falls back to defaults when no file exists; an explicit
// path that does not exist is an error.
//
//	config.Init()
//	cfg, err := config.Load("")
//
// # Validation
//
// [Load] and [Set] validate automatically. [Validate] returns every problem:
//
//	for _, e := range config.Validate(cfg) {
//		fmt.Println(e)
//	}
package config
