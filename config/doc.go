// Package config loads the YAML-backed settings that parametrize the
// spatial indices and the trajectory builder: minimum tile sizes,
// diagonal/smoothing toggles, and reference colors.
package config
