// Package collect turns a list of file/directory paths on the command
// line into the set of property roots to run. It specifies the
// collaborator interface (Adapter) the runner needs and ships one
// concrete realization that fits Go's static compilation model: a
// property tree must already be compiled into the pbtcheck binary
// before it can run, so rather than reflectively importing source files
// at runtime, a package that defines properties calls collect.Register
// from an init() (the same self-registration idiom as database/sql
// drivers), and pbtcheck's directory walk filters the registry down to
// whatever was registered from source files under the requested paths.
package collect
