package main

import "fmt"

// ConfigExistsError indicates config init would overwrite an existing file.
type ConfigExistsError struct {
	Path string
}

func (e ConfigExistsError) Error() string {
	return fmt.Sprintf("config already exists at %s (use --force to overwrite)", e.Path)
}

// MissingArgumentError indicates a required positional argument was blank.
type MissingArgumentError struct {
	Name string
}

func (e MissingArgumentError) Error() string {
	return fmt.Sprintf("%s is required", e.Name)
}
