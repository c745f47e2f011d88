// Package config manages user-level settings stored at ~/.advent/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the parsing policy and the default inputs directory. Environment variables
// with the ADVENT_ prefix override the file.
package config
