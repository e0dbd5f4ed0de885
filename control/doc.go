// Package control
// Author: momentics <momentics@gmail.com>
//
// Run configuration, result collection and logger setup for the lfkit
// command-line tools. Library packages never import it.
package control
