// Package config manages the YAML preferences file for castdex.
//
// The file stores application preferences only: directory endpoint
// override, debounce interval, HTTP timeout, and list sizing. Session
// state (the provisional selection and the committed roster) is never
// written to disk.
//
// The file lives in the platform config directory:
//   - Linux: $XDG_CONFIG_HOME/castdex/config.yaml or $HOME/.config/castdex/config.yaml
//   - macOS: $HOME/.config/castdex/config.yaml
//   - Windows: %LOCALAPPDATA%\castdex\config.yaml
package config
