package templates

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	shapeOnce   sync.Once
	shapeSchema *openapi3.Schema
)

// templateShape describes the containers the merge engine writes into. It is
// permissive: unknown fields are allowed and every listed field is optional,
// but a listed field must have the expected JSON type. Fields the merge
// replaces wholesale, such as note and interested_user, are not listed.
func templateShape() *openapi3.Schema {
	shapeOnce.Do(func() {
		objectList := func() *openapi3.Schema {
			return openapi3.NewArraySchema().WithItems(openapi3.NewObjectSchema())
		}
		shapeSchema = openapi3.NewObjectSchema().
			WithProperty("vendor", openapi3.NewObjectSchema()).
			WithProperty("material_type", openapi3.NewObjectSchema()).
			WithProperty("resource_metadata", openapi3.NewObjectSchema()).
			WithProperty("fund_distribution", objectList()).
			WithProperty("location", objectList())
	})
	return shapeSchema
}

// validateShape checks a generically decoded JSON value.
func validateShape(value any) error {
	return templateShape().VisitJSON(value)
}
