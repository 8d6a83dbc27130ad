package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/autarch/gopagure/samples"

	"github.com/stretchr/testify/assert"
)

func TestSwaggerDocument(t *testing.T) {
	sw := Swagger("pagure.io")

	assert.Equal(t, "2.0", sw.Swagger)
	assert.Equal(t, "pagure.io", sw.Host)

	for _, tmpl := range []string{
		"/api/0/groups",
		"/api/0/users",
		"/api/0/user/{username}",
	} {
		item, ok := sw.Paths.Paths[tmpl]
		if assert.True(t, ok, tmpl) {
			assert.NotNil(t, item.Get, tmpl)
			assert.Nil(t, item.Post, tmpl)
		}
	}
}

func TestSwaggerGroupsOperation(t *testing.T) {
	sw := Swagger("pagure.io")
	op := sw.Paths.Paths["/api/0/groups"].Get

	assert.Equal(t, "listGroups", op.ID)
	if assert.Len(t, op.Parameters, 1) {
		p := op.Parameters[0]
		assert.Equal(t, "pattern", p.Name)
		assert.Equal(t, "query", p.In)
		assert.False(t, p.Required)
		assert.Equal(t, samples.ParamDescription("pattern"), p.Description)
	}

	resp := op.Responses.StatusCodeResponses[http.StatusOK]
	assert.Equal(t, "#/definitions/GroupsResponse", resp.Schema.Ref.String())
	assert.Equal(t, samples.Groups(), resp.Examples["application/json"])
}

func TestSwaggerUserOperation(t *testing.T) {
	sw := Swagger("pagure.io")
	op := sw.Paths.Paths["/api/0/user/{username}"].Get

	assert.Equal(t, "getUser", op.ID)
	if assert.Len(t, op.Parameters, 1) {
		p := op.Parameters[0]
		assert.Equal(t, "username", p.Name)
		assert.Equal(t, "path", p.In)
		assert.True(t, p.Required)
	}

	resp := op.Responses.StatusCodeResponses[http.StatusOK]
	assert.Equal(t, "#/definitions/UserResponse", resp.Schema.Ref.String())
}

func TestSwaggerDocumentMarshals(t *testing.T) {
	encoded, err := json.Marshal(Swagger("pagure.io"))
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"swagger":"2.0"`)
	assert.Contains(t, string(encoded), "Minimum_score_to_merge_pull-request")
}
