// Package commands provides the command-line interface for the bksq tool.
//
// It implements commands for:
//   - authenticated encryption and decryption of files
//   - hashing and authenticating files
//   - key generation
//
// Flags and BKSQ_* environment variables are merged through viper and
// validated before any command runs.
package commands
