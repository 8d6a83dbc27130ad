// Package samples holds the canonical example values and parameter
// descriptions used when generating API documentation. Nothing here
// affects what travels over the wire; the values double as fixtures
// for codec conformance tests.
package samples

import (
	"github.com/autarch/gopagure/models"
)

// ParamDescriptions maps each query parameter and path capture to the
// wording used in generated documentation.
var ParamDescriptions = map[string]string{
	"pattern":  "An optional pattern to filter the results by. The pattern is passed to the server as-is, e.g. pattern=fedora*.",
	"username": "The username of the user to look up.",
}

// ParamDescription returns the documentation string for a parameter,
// or an empty string when none is registered.
func ParamDescription(name string) string {
	return ParamDescriptions[name]
}

// Groups returns the canonical example of a group listing response.
func Groups() models.GroupsResponse {
	return models.GroupsResponse{
		Groups:      []models.GroupName{"Fedora-Infra"},
		TotalGroups: 1,
	}
}

// Users returns the canonical example of a user listing response.
func Users() models.UsersResponse {
	return models.UsersResponse{
		Users:      []models.Username{"codeblock"},
		TotalUsers: 1,
	}
}

// User returns the canonical example of a per-user lookup response:
// one owned repository with default settings, no forks.
func User() models.UserResponse {
	owner := models.User{
		Fullname: "Ricky Elrod",
		Username: "codeblock",
	}

	return models.UserResponse{
		Forks: []models.Repo{},
		Repos: []models.Repo{
			{
				DateCreated: "1426595173",
				Description: "A test repository",
				ID:          4,
				Name:        "test",
				Parent:      nil,
				Settings: models.RepoSettings{
					MinimumScoreToMergePR:       -1,
					OnlyAssigneeCanMergePR:      false,
					WebHooksURL:                 nil,
					IssueTrackerEnabled:         true,
					ProjectDocumentationEnabled: false,
					PullRequestsEnabled:         true,
				},
				Owner: owner,
			},
		},
		User: owner,
	}
}
