package routes

import (
	"log"
	"reflect"
	"strings"

	"github.com/autarch/gopagure/models"

	"github.com/go-openapi/spec"
)

// The swagger definitions are derived by reflecting over the model
// structs. The json tags are the authoritative wire-key table, so the
// generated document can never drift from what the codec actually
// reads and writes.

func definitions() spec.Definitions {
	defs := spec.Definitions{}
	for _, v := range []interface{}{
		models.GroupsResponse{},
		models.UsersResponse{},
		models.UserResponse{},
	} {
		defineType(reflect.TypeOf(v), defs)
	}
	return defs
}

// defineType registers a definition for a record type and returns its
// name. The name is registered before the fields are walked so that
// the Repo.parent self-reference resolves to a $ref instead of
// recursing forever.
func defineType(t reflect.Type, defs spec.Definitions) string {
	name := t.Name()
	if _, ok := defs[name]; ok {
		return name
	}
	defs[name] = spec.Schema{}

	schema := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       spec.StringOrArray{"object"},
			Properties: map[string]spec.Schema{},
		},
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := wireKey(t, f)
		schema.Properties[key] = property(f.Type, defs)
		if f.Type.Kind() != reflect.Ptr {
			schema.Required = append(schema.Required, key)
		}
	}

	defs[name] = schema
	return name
}

func wireKey(t reflect.Type, f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		log.Panicf("Type %s has a field with no json tag: %s", t.Name(), f.Name)
	}
	return strings.Split(tag, ",")[0]
}

func property(t reflect.Type, defs spec.Definitions) spec.Schema {
	switch t.Kind() {
	case reflect.String:
		return *spec.StringProperty()
	case reflect.Int, reflect.Int64:
		return *spec.Int64Property()
	case reflect.Bool:
		return *spec.BooleanProperty()
	case reflect.Slice:
		items := property(t.Elem(), defs)
		return *spec.ArrayProperty(&items)
	case reflect.Ptr:
		inner := property(t.Elem(), defs)
		inner.AddExtension("x-nullable", true)
		return inner
	case reflect.Struct:
		return *spec.RefProperty("#/definitions/" + defineType(t, defs))
	}

	log.Panicf("No swagger type for Go kind %s", t.Kind())
	return spec.Schema{}
}
