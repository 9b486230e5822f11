// Package repl implements an interactive read-print loop for PSON.
//
// Input is read line by line. Lines are accumulated while a string or an
// array or map is still open; once balanced, the accumulated text is parsed
// and every top-level value is printed back, or the parse error is.
//
// Outside of accumulated input two commands are recognised:
//
//	\help   show help
//	\exit   end the session
package repl
