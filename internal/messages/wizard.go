package messages

// Interactive selection messages.
const (
	WizardRequiresTerminal = "interactive mode requires a terminal"

	WizardPlatformsTitle      = "Which assistants should Agent OS set up?"
	WizardPlatformOptionFmt   = "%s (%s)"
	WizardOverwritePromptFmt  = "%s already exists. Replace it with the template?"
	WizardConfirmTitleFmt     = "Install Agent OS into %s?"
	WizardConfirmPlatformsFmt = "Platforms: %s"
	WizardConfirmOverwriteFmt = "Replace: %s"
	WizardSummaryNone         = "none"
	WizardHelpTitle           = "Agent OS installer"
	WizardHelpBody            = "Use space to toggle, enter to continue, esc to go back and ctrl+c to quit."
)
