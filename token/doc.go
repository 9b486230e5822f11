// Package token provides the lexical layer of PSON shared by the scanner,
// the encoder and the interactive collector.
//
// [ClassifyAtom] decides what a bare token denotes, [Unescape] and
// [DecodeHex] implement the quoted string escapes, [Quote] produces a
// quoted literal which reads back as the same string, and [Balancer]
// tracks bracket depth and open strings across lines of input.
package token
