// Package models defines the typed wire data model for the Pagure API
// endpoints this module describes, along with the JSON codec contract
// for each record type.
//
// Encoding goes through the json struct tags below, which are the
// authoritative wire-key mapping. The upstream key names are irregular
// (snake_case, Mixed_case and hyphens within one payload), so the
// mapping is spelled out per field rather than derived from a naming
// rule. Decoding is strict: see the UnmarshalJSON implementations in
// codec.go.
package models

// GroupName identifies a Pagure group. On the wire it is a bare JSON
// string.
type GroupName string

// Username identifies a Pagure user. On the wire it is a bare JSON
// string, and it doubles as the raw path segment for the per-user
// endpoint.
type Username string

// UserFullname is a user's display name.
type UserFullname string

// GroupsResponse is the envelope returned by the group listing
// endpoint. TotalGroups is advisory metadata from the server and need
// not equal len(Groups); the upstream service may paginate.
type GroupsResponse struct {
	Groups      []GroupName `json:"groups"`
	TotalGroups int64       `json:"total_groups"`
}

// UsersResponse is the envelope returned by the user listing endpoint.
// TotalUsers carries the same advisory semantics as
// GroupsResponse.TotalGroups.
type UsersResponse struct {
	Users      []Username `json:"users"`
	TotalUsers int64      `json:"total_users"`
}

// User is a user as embedded in repository payloads. The wire key for
// Username is "name".
type User struct {
	Fullname UserFullname `json:"fullname"`
	Username Username     `json:"name"`
}

// Repo is a single repository. Parent is non-nil only for forks and
// points at the repository this one was forked from; each decoded Repo
// owns its full parent chain as a tree. DateCreated is an opaque
// timestamp string passed through unparsed. The wire key for Owner is
// "user".
type Repo struct {
	DateCreated string       `json:"date_created"`
	Description string       `json:"description"`
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Parent      *Repo        `json:"parent"`
	Settings    RepoSettings `json:"settings"`
	Owner       User         `json:"user"`
}

// RepoSettings holds a repository's feature switches. WebHooksURL is
// nil when the repository has no web hook configured; it encodes as
// JSON null, never as an omitted key.
type RepoSettings struct {
	MinimumScoreToMergePR       int64   `json:"Minimum_score_to_merge_pull-request"`
	OnlyAssigneeCanMergePR      bool    `json:"Only_assignee_can_merge_pull-request"`
	WebHooksURL                 *string `json:"Web-hooks"`
	IssueTrackerEnabled         bool    `json:"issue_tracker"`
	ProjectDocumentationEnabled bool    `json:"project_documentation"`
	PullRequestsEnabled         bool    `json:"pull_requests"`
}

// UserResponse is the full payload of the per-user endpoint: the
// repositories the user forked, the repositories the user owns, and
// the user record itself.
type UserResponse struct {
	Forks []Repo `json:"forks"`
	Repos []Repo `json:"repos"`
	User  User   `json:"user"`
}
