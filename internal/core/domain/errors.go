package domain

import "go.trai.ch/zerr"

var (
	// ErrPrerequisiteMissing is returned when the cached GitHub token, CircleCI token or site name is absent.
	ErrPrerequisiteMissing = zerr.New(
		"Sorry, looks like you are not using Github, CircleCI or your cached configuration " +
			"does not have site name. We can not set your DIFFY credentials automatically.",
	)

	// ErrSessionMissing is returned when the host CLI session does not carry a user id.
	ErrSessionMissing = zerr.New("no logged in user found in the cached session")

	// ErrSessionReadFailed is returned when the host CLI session file cannot be read or decoded.
	ErrSessionReadFailed = zerr.New("failed to read cached session")

	// ErrKeyRejected is returned when Diffy does not accept an API key.
	ErrKeyRejected = zerr.New("Provided API Key is invalid")

	// ErrProjectNotFound is returned when a project does not exist or is not accessible.
	ErrProjectNotFound = zerr.New("Entered project either does not exist or you do not have access to it.")

	// ErrDiffyRequestFailed is returned when a Diffy API call fails for a reason other than a rejection.
	ErrDiffyRequestFailed = zerr.New("failed to make Diffy API request")

	// ErrDiffyParseFailed is returned when a Diffy API response cannot be decoded.
	ErrDiffyParseFailed = zerr.New("failed to parse Diffy API response")

	// ErrGitHubLookupFailed is returned when the GitHub login cannot be resolved.
	ErrGitHubLookupFailed = zerr.New("failed to look up GitHub user")

	// ErrEnvVarPushFailed is returned when an environment variable cannot be set on CircleCI.
	ErrEnvVarPushFailed = zerr.New("failed to set CircleCI environment variable")

	// ErrPartialPush is returned when a variable push fails after an earlier one succeeded.
	ErrPartialPush = zerr.New("CircleCI environment variables were only partially set")

	// ErrResolutionIncomplete is returned when the workflow ends without a session token or project.
	ErrResolutionIncomplete = zerr.New("Diffy API key or project could not be resolved")

	// ErrPromptAborted is returned when the user input ends before a value was resolved.
	ErrPromptAborted = zerr.New("prompt aborted")

	// ErrPromptFailed is returned when the terminal prompt cannot be rendered or read.
	ErrPromptFailed = zerr.New("failed to read user input")

	// ErrStoreReadFailed is returned when a cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrPlatformReadFailed is returned when the build tools cache directory cannot be listed.
	ErrPlatformReadFailed = zerr.New("failed to read build tools cache")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPromptMode is returned when the prompt mode flag is not recognized.
	ErrInvalidPromptMode = zerr.New("invalid prompt mode, want auto, interactive or line")

	// ErrInvalidTimeout is returned when the configured request timeout is not positive.
	ErrInvalidTimeout = zerr.New("timeout must be a positive duration")
)
