package graphql

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

func introspectionEnabled(ctx context.Context) error {
	if graphql.GetOperationContext(ctx).DisableIntrospection {
		return fmt.Errorf("%w: introspection is disabled", domain.ErrInvalidArgument)
	}
	return nil
}

func describe(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deprecation(directives ast.DirectiveList) (bool, *string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, nil
	}
	reason := "No longer supported"
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}
	return true, &reason
}

func namedType(s *ast.Schema, def *ast.Definition) interface{} {
	if def == nil {
		return nil
	}
	return &typeObject{schema: s, def: def}
}

func typeRef(s *ast.Schema, t *ast.Type) object {
	if t.NonNull {
		inner := *t
		inner.NonNull = false
		return &typeObject{schema: s, kind: "NON_NULL", ofType: &inner}
	}
	if t.Elem != nil {
		return &typeObject{schema: s, kind: "LIST", ofType: t.Elem}
	}
	return &typeObject{schema: s, def: s.Types[t.NamedType]}
}

type schemaObject struct {
	schema *ast.Schema
}

func (*schemaObject) typeName() string { return "__Schema" }

func (o *schemaObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "types":
		names := make([]string, 0, len(o.schema.Types))
		for name := range o.schema.Types {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]object, 0, len(names))
		for _, name := range names {
			out = append(out, &typeObject{schema: o.schema, def: o.schema.Types[name]})
		}
		return out, nil
	case "queryType":
		return namedType(o.schema, o.schema.Query), nil
	case "mutationType":
		return namedType(o.schema, o.schema.Mutation), nil
	case "subscriptionType":
		return namedType(o.schema, o.schema.Subscription), nil
	case "directives":
		names := make([]string, 0, len(o.schema.Directives))
		for name := range o.schema.Directives {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]object, 0, len(names))
		for _, name := range names {
			out = append(out, &directiveObject{schema: o.schema, directive: o.schema.Directives[name]})
		}
		return out, nil
	}
	return nil, nil
}

// typeObject is a named definition, or a LIST or NON_NULL wrapper around ofType
type typeObject struct {
	schema *ast.Schema
	def    *ast.Definition
	kind   string
	ofType *ast.Type
}

func (*typeObject) typeName() string { return "__Type" }

func (o *typeObject) resolve(_ context.Context, field graphql.CollectedField, args map[string]interface{}) (interface{}, error) {
	if o.def == nil {
		switch field.Name {
		case "kind":
			return o.kind, nil
		case "ofType":
			return typeRef(o.schema, o.ofType), nil
		}
		return nil, nil
	}

	def := o.def
	includeDeprecated, _ := args["includeDeprecated"].(bool)
	switch field.Name {
	case "kind":
		return string(def.Kind), nil
	case "name":
		return def.Name, nil
	case "description":
		return describe(def.Description), nil
	case "fields":
		if def.Kind != ast.Object && def.Kind != ast.Interface {
			return nil, nil
		}
		out := []object{}
		for _, f := range def.Fields {
			if deprecated, _ := deprecation(f.Directives); strings.HasPrefix(f.Name, "__") || (deprecated && !includeDeprecated) {
				continue
			}
			out = append(out, &fieldObject{schema: o.schema, field: f})
		}
		return out, nil
	case "interfaces":
		if def.Kind != ast.Object && def.Kind != ast.Interface {
			return nil, nil
		}
		out := []object{}
		for _, name := range def.Interfaces {
			out = append(out, &typeObject{schema: o.schema, def: o.schema.Types[name]})
		}
		return out, nil
	case "possibleTypes":
		if def.Kind != ast.Interface && def.Kind != ast.Union {
			return nil, nil
		}
		out := []object{}
		for _, t := range o.schema.GetPossibleTypes(def) {
			out = append(out, &typeObject{schema: o.schema, def: t})
		}
		return out, nil
	case "enumValues":
		if def.Kind != ast.Enum {
			return nil, nil
		}
		out := []object{}
		for _, v := range def.EnumValues {
			if deprecated, _ := deprecation(v.Directives); deprecated && !includeDeprecated {
				continue
			}
			out = append(out, &enumValueObject{v})
		}
		return out, nil
	case "inputFields":
		if def.Kind != ast.InputObject {
			return nil, nil
		}
		out := []object{}
		for _, f := range def.Fields {
			out = append(out, &inputValueObject{
				schema:       o.schema,
				name:         f.Name,
				description:  f.Description,
				typ:          f.Type,
				defaultValue: f.DefaultValue,
				directives:   f.Directives,
			})
		}
		return out, nil
	case "isOneOf":
		if def.Kind != ast.InputObject {
			return nil, nil
		}
		return def.Directives.ForName("oneOf") != nil, nil
	}
	return nil, nil
}

type fieldObject struct {
	schema *ast.Schema
	field  *ast.FieldDefinition
}

func (*fieldObject) typeName() string { return "__Field" }

func (o *fieldObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "name":
		return o.field.Name, nil
	case "description":
		return describe(o.field.Description), nil
	case "args":
		return argumentObjects(o.schema, o.field.Arguments), nil
	case "type":
		return typeRef(o.schema, o.field.Type), nil
	case "isDeprecated":
		deprecated, _ := deprecation(o.field.Directives)
		return deprecated, nil
	case "deprecationReason":
		_, reason := deprecation(o.field.Directives)
		return reason, nil
	}
	return nil, nil
}

type inputValueObject struct {
	schema       *ast.Schema
	name         string
	description  string
	typ          *ast.Type
	defaultValue *ast.Value
	directives   ast.DirectiveList
}

func argumentObjects(s *ast.Schema, args ast.ArgumentDefinitionList) []object {
	out := make([]object, 0, len(args))
	for _, a := range args {
		out = append(out, &inputValueObject{
			schema:       s,
			name:         a.Name,
			description:  a.Description,
			typ:          a.Type,
			defaultValue: a.DefaultValue,
			directives:   a.Directives,
		})
	}
	return out
}

func (*inputValueObject) typeName() string { return "__InputValue" }

func (o *inputValueObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "name":
		return o.name, nil
	case "description":
		return describe(o.description), nil
	case "type":
		return typeRef(o.schema, o.typ), nil
	case "defaultValue":
		if o.defaultValue == nil {
			return nil, nil
		}
		return o.defaultValue.String(), nil
	case "isDeprecated":
		deprecated, _ := deprecation(o.directives)
		return deprecated, nil
	case "deprecationReason":
		_, reason := deprecation(o.directives)
		return reason, nil
	}
	return nil, nil
}

type enumValueObject struct {
	value *ast.EnumValueDefinition
}

func (*enumValueObject) typeName() string { return "__EnumValue" }

func (o *enumValueObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "name":
		return o.value.Name, nil
	case "description":
		return describe(o.value.Description), nil
	case "isDeprecated":
		deprecated, _ := deprecation(o.value.Directives)
		return deprecated, nil
	case "deprecationReason":
		_, reason := deprecation(o.value.Directives)
		return reason, nil
	}
	return nil, nil
}

type directiveObject struct {
	schema    *ast.Schema
	directive *ast.DirectiveDefinition
}

func (*directiveObject) typeName() string { return "__Directive" }

func (o *directiveObject) resolve(_ context.Context, field graphql.CollectedField, _ map[string]interface{}) (interface{}, error) {
	switch field.Name {
	case "name":
		return o.directive.Name, nil
	case "description":
		return describe(o.directive.Description), nil
	case "locations":
		out := make([]string, 0, len(o.directive.Locations))
		for _, l := range o.directive.Locations {
			out = append(out, string(l))
		}
		return out, nil
	case "args":
		return argumentObjects(o.schema, o.directive.Arguments), nil
	case "isRepeatable":
		return o.directive.IsRepeatable, nil
	}
	return nil, nil
}
