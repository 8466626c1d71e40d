package domain

// Resolution carries the values resolved while configuring Diffy for one
// command invocation. Each workflow step receives the record produced by the
// previous one.
type Resolution struct {
	// UserID is the host CLI user the cache entries belong to.
	UserID string
	// APIKey is the accepted Diffy API key.
	APIKey string
	// Token is the Diffy session token obtained with APIKey. It is never persisted.
	Token string
	// ProjectID is the selected Diffy project.
	ProjectID ProjectID
}

// HasAPIKey reports whether the key entry step has completed.
func (r Resolution) HasAPIKey() bool {
	return r.APIKey != "" && r.Token != ""
}

// Resolved reports whether both the key and the project are known.
func (r Resolution) Resolved() bool {
	return r.HasAPIKey() && r.ProjectID != ""
}

// EnvVars returns the CircleCI variables to push, in push order.
func (r Resolution) EnvVars() []EnvVar {
	return []EnvVar{
		{Name: EnvVarAPIKey, Value: r.APIKey},
		{Name: EnvVarProjectID, Value: r.ProjectID.String()},
	}
}

// EnvVar is a named value stored in a CI project's settings.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EnvVarTarget addresses the CircleCI project of a GitHub-hosted site.
type EnvVarTarget struct {
	Login string
	Site  string
}
