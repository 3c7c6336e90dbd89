// Package config holds the runtime configuration of the bksq command line.
package config

import (
	"errors"

	"github.com/idelchi/gogen/pkg/validator"
)

// Config collects flags, environment variables and positional arguments.
type Config struct {
	// Key is the hex-encoded 96-bit key.
	Key string `label:"--key" mapstructure:"key" mask:"fixed" validate:"omitempty,hexadecimal,len=24,exclusive=KeyFile"`

	// KeyFile is the path to a file holding the hex-encoded key.
	KeyFile string `label:"--key-file" mapstructure:"key-file" validate:"omitempty,file"`

	// Parallel is the number of files processed at once.
	Parallel int `label:"--parallel" mapstructure:"parallel" validate:"gte=1"`

	// Workers is the number of goroutines used for the counter-mode pass of one file.
	Workers int `label:"--workers" mapstructure:"workers" validate:"gte=1"`

	// Suffixes control output file naming.
	Suffixes Suffixes `mapstructure:",squash"`

	// Show prints the configuration and exits.
	Show bool `mapstructure:"show"`

	Quiet              bool `mapstructure:"quiet"`
	Verbose            bool `mapstructure:"verbose"`
	Delete             bool `mapstructure:"delete"`
	Stats              bool `mapstructure:"stats"`
	Dry                bool `mapstructure:"dry"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Decrypt is set by the decrypt command.
	Decrypt bool `mapstructure:"-"`

	// Files are the positional arguments: files or directories.
	Files []string `label:"files" mapstructure:"-" validate:"min=1"`
}

// Suffixes are appended to (or stripped from) file names.
type Suffixes struct {
	// Encrypt is appended to encrypted files and stripped on decryption.
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required"`

	// Decrypt is appended to decrypted files.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Display reports whether the configuration should be printed instead of running the command.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags and reports every violation.
func (c *Config) Validate(config any) error {
	v := validator.NewValidator()

	if err := registerExclusive(v); err != nil {
		return err
	}

	if errs := v.Validate(config); errs != nil {
		return errors.Join(errs...)
	}

	return nil
}
