// Package shell turns a single command line into a tree of programs joined by
// control and redirection operators.
//
// Loosely follows
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html
// but only implements the first three steps:
//
// 1. The shell reads a single line of input.
//
// 2. The shell breaks the input into tokens: words, operators and parentheses;
// see Tokenize. Quoting and escaping are removed from words here.
//
// 3. The shell parses the tokens into programs joined by the operators
// ";", "||", "&&", "|", "<" and ">"; see Parse. Parentheses group but never
// appear in the resulting tree.
//
// Expansions, redirection wiring and execution are left to the consumer of the
// tree.
package shell
