package routes

import (
	"net/http"

	"github.com/autarch/gopagure/samples"

	"github.com/go-openapi/spec"
)

// Swagger assembles a swagger 2.0 document for the routes in this
// package. host is the server the document points at, without a
// scheme, e.g. "pagure.io". The document carries the canonical sample
// values so external documentation tooling can show worked examples.
func Swagger(host string) *spec.Swagger {
	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       "Pagure API",
					Description: "Group listing, user listing and per-user repository lookup.",
					Version:     "0",
				},
			},
			Host:     host,
			Schemes:  []string{"https"},
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
			Paths: &spec.Paths{
				Paths: map[string]spec.PathItem{
					ListGroups.Template: pathItem(ListGroups, "GroupsResponse", samples.Groups()),
					ListUsers.Template:  pathItem(ListUsers, "UsersResponse", samples.Users()),
					GetUser.Template:    pathItem(GetUser, "UserResponse", samples.User()),
				},
			},
			Definitions: definitions(),
		},
	}
}

func pathItem(r Route, definition string, example interface{}) spec.PathItem {
	op := &spec.Operation{
		OperationProps: spec.OperationProps{
			ID:         r.ID,
			Summary:    r.Name,
			Parameters: parameters(r),
			Responses: &spec.Responses{
				ResponsesProps: spec.ResponsesProps{
					StatusCodeResponses: map[int]spec.Response{
						http.StatusOK: response(definition, example),
					},
				},
			},
		},
	}

	return spec.PathItem{PathItemProps: spec.PathItemProps{Get: op}}
}

func parameters(r Route) []spec.Parameter {
	var params []spec.Parameter
	for _, p := range r.Params {
		params = append(params, spec.Parameter{
			ParamProps: spec.ParamProps{
				Name:        p.Name,
				In:          p.In,
				Required:    p.Required,
				Description: samples.ParamDescription(p.Name),
			},
			SimpleSchema: spec.SimpleSchema{Type: "string"},
		})
	}
	return params
}

func response(definition string, example interface{}) spec.Response {
	return spec.Response{
		ResponseProps: spec.ResponseProps{
			Description: "successful operation",
			Schema:      spec.RefProperty("#/definitions/" + definition),
			Examples: map[string]interface{}{
				"application/json": example,
			},
		},
	}
}
