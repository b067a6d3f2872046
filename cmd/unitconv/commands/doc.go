// Package commands defines the unitconv CLI.
//
// Commands
//
//   - categories   List the measurement categories
//   - units        List the units of a category
//   - convert      Convert a value between two units of a category
//   - repl         Interactive converter with history and completion
//
// # Implementation
//
// The root command builds the conversion engine over the built-in table and
// a console logger before any subcommand runs. Conversion failures are
// printed to stderr as their user facing message and make the process exit
// with status 1.
package commands
