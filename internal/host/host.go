// Package host models the clipboard-utility host boundary. The host itself
// is external; these are the delivery capabilities the dispatcher consumes.
package host

// Host is the delivery surface for one invocation.
type Host interface {
	// CanPaste reports whether the host can paste into the original context.
	CanPaste() bool
	// Paste inserts text into the original context.
	Paste(text string) error
	// Copy places text on the clipboard.
	Copy(text string) error
	// ShowText surfaces text to the user, optionally as a dismissible preview.
	ShowText(text string, preview bool)
	// ShowStatus shows the success/failure indicator.
	ShowStatus(ok bool)
}
