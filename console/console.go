package console

/*
Message sinks for the viewer. Everything that wants to tell the operator
something (command results, errors, selection changes) writes a line through
a Console:

	- Gui keeps the last message on the status view at the bottom of the screen
	- Simple writes every message to a plain writer, used when headless
*/

// Console receives status messages
type Console interface {
	WriteConsole(msg string) error
}
