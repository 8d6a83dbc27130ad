package models

import (
	"bytes"
	"encoding/json"

	"github.com/hashicorp/errwrap"
)

// The decode contract is the same for every record type: the input
// must be a JSON object, every documented key is required unless noted
// nullable, null on a nullable key means absent, and nested records
// recurse through the same rules. Decoding either produces a complete
// value or fails with a DecodeFailure; no partial record escapes.

func objectKeys(typ string, data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &DecodeFailure{Type: typ, Err: errNotAnObject}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &DecodeFailure{Type: typ, Err: err}
	}

	return obj, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// required decodes obj[key] into dst. The key must be present and must
// not be null; json.Unmarshal would silently skip a null for most
// destination types, so it is rejected up front.
func required(typ string, obj map[string]json.RawMessage, key string, dst interface{}) error {
	raw, ok := obj[key]
	if !ok {
		return &DecodeFailure{Type: typ, Key: key, Err: errMissingKey}
	}
	if isNull(raw) {
		return &DecodeFailure{Type: typ, Key: key, Err: errNullValue}
	}
	return decodeInto(typ, key, raw, dst)
}

// optional decodes obj[key] into dst, treating both an absent key and
// an explicit null as "no value" and leaving dst untouched.
func optional(typ string, obj map[string]json.RawMessage, key string, dst interface{}) error {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	return decodeInto(typ, key, raw, dst)
}

func decodeInto(typ, key string, raw json.RawMessage, dst interface{}) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}
	if IsDecodeFailure(err) {
		// A nested record already failed with full detail; just add
		// this level to the path.
		return errwrap.Wrapf(typ+"."+key+": {{err}}", err)
	}
	return &DecodeFailure{Type: typ, Key: key, Err: err}
}

func (g *GroupsResponse) UnmarshalJSON(data []byte) error {
	obj, err := objectKeys("GroupsResponse", data)
	if err != nil {
		return err
	}

	var out GroupsResponse
	if err := required("GroupsResponse", obj, "groups", &out.Groups); err != nil {
		return err
	}
	if err := required("GroupsResponse", obj, "total_groups", &out.TotalGroups); err != nil {
		return err
	}

	*g = out
	return nil
}

func (u *UsersResponse) UnmarshalJSON(data []byte) error {
	obj, err := objectKeys("UsersResponse", data)
	if err != nil {
		return err
	}

	var out UsersResponse
	if err := required("UsersResponse", obj, "users", &out.Users); err != nil {
		return err
	}
	if err := required("UsersResponse", obj, "total_users", &out.TotalUsers); err != nil {
		return err
	}

	*u = out
	return nil
}

func (u *User) UnmarshalJSON(data []byte) error {
	obj, err := objectKeys("User", data)
	if err != nil {
		return err
	}

	var out User
	if err := required("User", obj, "fullname", &out.Fullname); err != nil {
		return err
	}
	if err := required("User", obj, "name", &out.Username); err != nil {
		return err
	}

	*u = out
	return nil
}

func (r *Repo) UnmarshalJSON(data []byte) error {
	obj, err := objectKeys("Repo", data)
	if err != nil {
		return err
	}

	var out Repo
	if err := required("Repo", obj, "date_created", &out.DateCreated); err != nil {
		return err
	}
	if err := required("Repo", obj, "description", &out.Description); err != nil {
		return err
	}
	if err := required("Repo", obj, "id", &out.ID); err != nil {
		return err
	}
	if err := required("Repo", obj, "name", &out.Name); err != nil {
		return err
	}
	// A fork's parent chain recurses through this same method and
	// terminates at the first repository with a null parent.
	if err := optional("Repo", obj, "parent", &out.Parent); err != nil {
		return err
	}
	if err := required("Repo", obj, "settings", &out.Settings); err != nil {
		return err
	}
	if err := required("Repo", obj, "user", &out.Owner); err != nil {
		return err
	}

	*r = out
	return nil
}

func (s *RepoSettings) UnmarshalJSON(data []byte) error {
	obj, err := objectKeys("RepoSettings", data)
	if err != nil {
		return err
	}

	var out RepoSettings
	if err := required("RepoSettings", obj, "Minimum_score_to_merge_pull-request", &out.MinimumScoreToMergePR); err != nil {
		return err
	}
	if err := required("RepoSettings", obj, "Only_assignee_can_merge_pull-request", &out.OnlyAssigneeCanMergePR); err != nil {
		return err
	}
	if err := optional("RepoSettings", obj, "Web-hooks", &out.WebHooksURL); err != nil {
		return err
	}
	if err := required("RepoSettings", obj, "issue_tracker", &out.IssueTrackerEnabled); err != nil {
		return err
	}
	if err := required("RepoSettings", obj, "project_documentation", &out.ProjectDocumentationEnabled); err != nil {
		return err
	}
	if err := required("RepoSettings", obj, "pull_requests", &out.PullRequestsEnabled); err != nil {
		return err
	}

	*s = out
	return nil
}

func (u *UserResponse) UnmarshalJSON(data []byte) error {
	obj, err := objectKeys("UserResponse", data)
	if err != nil {
		return err
	}

	var out UserResponse
	if err := required("UserResponse", obj, "forks", &out.Forks); err != nil {
		return err
	}
	if err := required("UserResponse", obj, "repos", &out.Repos); err != nil {
		return err
	}
	if err := required("UserResponse", obj, "user", &out.User); err != nil {
		return err
	}

	*u = out
	return nil
}
