package install

// Reporter receives user-facing progress while Run executes.
// It has no effect on the outcome.
type Reporter interface {
	Progress(label string)
	Warning(msg string)
	Error(msg string)
}

// Discard is a Reporter that drops everything.
type Discard struct{}

// Progress implements Reporter.
func (Discard) Progress(string) {}

// Warning implements Reporter.
func (Discard) Warning(string) {}

// Error implements Reporter.
func (Discard) Error(string) {}
