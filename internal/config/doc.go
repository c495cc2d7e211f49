// Package config provides configuration management for marios.
//
// This package implements a layered configuration system that lets users
// reshape the desktop through YAML files. Configuration is loaded from
// multiple sources and merged in order, with later sources overriding
// earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - The terminal, about, projects, skills and contact windows
//
//  2. User Configuration (~/.config/marios/config.yaml)
//
//  3. Project Configuration (./.marios/config.yaml)
//
// An explicit file passed with --config replaces layers 2 and 3.
//
// # Configuration Structure
//
//	desktop:
//	  defaultWindow: terminal-main
//	  mobileBreakpoint: 72      # terminals this narrow or narrower use mobile mode
//	  statusBarHeight: 1
//	  taskbarHeight: 1
//	  forceMobile: false
//	  strict: false             # fail on unknown window ids instead of logging
//
//	windows:
//	  - id: about
//	    title: about.txt
//	    launcher: about
//	    x: 12
//	    y: 5
//	    width: 56
//	    height: 18
//	    content: |
//	      [USER_PROFILE]
//	  - id: projects
//	    tabs:
//	      - name: marios
//	        content: A hacker OS portfolio.
//
//	keys:
//	  cycle: ["alt+tab", "f6"]
//	  minimize: ["ctrl+m", "f9"]
//
//	boot:
//	  skip: false
//	  duration: 5s
//
//	contact:
//	  endpoint: https://api.web3forms.com/submit
//	  accessKey: "..."
//	  email: contact@example.com
//	  timeout: 10s
//	  retries: 2
//
//	mcp:
//	  enabled: true
//	  host: localhost
//	  port: 8090
//
//	updates:
//	  repository: marios-dev/marios
//
// # Merging Rules
//
// Scalar values in a later layer replace earlier ones when set. Windows are
// matched by id: a window with a known id replaces the earlier definition in
// place, a new id is appended. Boolean switches are optional: a later layer
// that names one wins, including an explicit false.
//
// # Validation
//
// Window ids and launchers must be unique, every window needs a positive
// size, the default window must exist and every shortcut must parse.
// Violations wrap ErrInvalidConfig.
package config
