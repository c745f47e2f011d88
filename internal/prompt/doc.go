// Package prompt implements the terminal prompter used in interactive mode:
// numbered single-choice menus and free-text questions over an io.Reader and
// io.Writer. It never retries; every failure is returned to the caller.
package prompt
