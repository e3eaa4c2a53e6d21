// Package console implements the interactive terminal I/O of the game:
// validated prompts and styled output lines.
//
// ReadInt re-prompts until the player types an integer inside the requested
// range. ReadLine returns a raw line, empty allowed. Neither surfaces parse
// errors; the only error they return is ErrInputClosed once standard input
// is exhausted.
package console
