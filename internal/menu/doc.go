// Package menu implements the numbered-menu prompts of the interactive flow.
//
// A Menu is printed as its message, one "{i}. {option}" line per option and a
// trailing "{k+1}. Exit" line. Prompter.Dispatch reads a single line and
// either invokes the bound Action, requests process exit, or prints the
// invalid-choice message. It never loops; callers decide whether to ask
// again.
package menu
