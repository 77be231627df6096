// ABOUTME: Editing session package
// ABOUTME: Owns the loaded buffer, trim window and playback state
// Package session holds everything one editing session owns: the decoded
// source, the trim window over it and the playback state, plus the command
// vocabulary the front-ends share.
//
// A Session is driven by a single foreground loop. The only background actor
// is the output device, which the session polls for elapsed time.
package session
