package cli

var (
	verbose bool

	// all commands
	remoteAddr string
	platform   string

	// for script command
	scriptArgs []string

	// for screenshot command
	screenshotOutputPath string

	// for context command
	contextName string

	// for io swipe command
	swipeDurationMs int

	// for io text command
	textCapital bool

	// for cookie add command
	cookiePath   string
	cookieDomain string
	cookieSecure bool

	// for timeouts command
	timeoutImplicit int
	timeoutScript   int
	timeoutPageLoad int
)
