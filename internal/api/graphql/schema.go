package graphql

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

//go:embed schema.graphqls
var schemaSource string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})

// object resolves the fields of one GraphQL object type.
// resolve returns a scalar, an object, a slice of either, or nil for null.
type object interface {
	typeName() string
	resolve(ctx context.Context, field graphql.CollectedField, args map[string]interface{}) (interface{}, error)
}

type executableSchema struct {
	resolver *Resolver
}

// NewExecutableSchema serves the ledger schema from the resolver
func NewExecutableSchema(r *Resolver) graphql.ExecutableSchema {
	return &executableSchema{resolver: r}
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, args map[string]interface{}) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	if opCtx.Operation.Operation != ast.Query {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported operation: %s", opCtx.Operation.Operation))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		ec := &executionContext{opCtx: opCtx}
		data := ec.marshalObject(ctx, nil, opCtx.Operation.SelectionSet, e.resolver.query())
		if data == nil {
			data = graphql.Null
		}

		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// fieldSet writes object fields in selection order
type fieldSet struct {
	keys   []string
	values []graphql.Marshaler
}

func (f *fieldSet) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, "{")
	for i, key := range f.keys {
		if i > 0 {
			_, _ = io.WriteString(w, ",")
		}
		_, _ = io.WriteString(w, strconv.Quote(key))
		_, _ = io.WriteString(w, ":")
		f.values[i].MarshalGQL(w)
	}
	_, _ = io.WriteString(w, "}")
}

type executionContext struct {
	opCtx *graphql.OperationContext
}

// marshalObject returns nil when a non-null field came back null, which nulls the enclosing value
func (ec *executionContext) marshalObject(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj object) graphql.Marshaler {
	fields := graphql.CollectFields(ec.opCtx, sel, []string{obj.typeName()})
	out := &fieldSet{}
	for _, field := range fields {
		m := ec.marshalField(ctx, appendPath(path, ast.PathName(field.Alias)), field, obj)
		if m == nil {
			if field.Definition != nil && field.Definition.Type.NonNull {
				return nil
			}
			m = graphql.Null
		}
		out.keys = append(out.keys, field.Alias)
		out.values = append(out.values, m)
	}
	return out
}

func (ec *executionContext) marshalField(ctx context.Context, path ast.Path, field graphql.CollectedField, obj object) graphql.Marshaler {
	if field.Name == "__typename" {
		return graphql.MarshalString(obj.typeName())
	}

	v, err := obj.resolve(ctx, field, field.ArgumentMap(ec.opCtx.Variables))
	if err != nil {
		ec.addError(ctx, path, err)
		return nil
	}

	var typ *ast.Type
	if field.Definition != nil {
		typ = field.Definition.Type
	}
	return ec.marshalValue(ctx, path, field, typ, v)
}

// marshalValue returns nil for null. A null in a non-null position is reported once, where it originates.
func (ec *executionContext) marshalValue(ctx context.Context, path ast.Path, field graphql.CollectedField, typ *ast.Type, v interface{}) graphql.Marshaler {
	switch v := v.(type) {
	case nil:
		return ec.null(ctx, path, typ)
	case graphql.Marshaler:
		return v
	case string:
		return graphql.MarshalString(v)
	case *string:
		if v == nil {
			return ec.null(ctx, path, typ)
		}
		return graphql.MarshalString(*v)
	case bool:
		return graphql.MarshalBoolean(v)
	case int:
		return graphql.MarshalInt(v)
	case object:
		return ec.marshalObject(ctx, path, field.Selections, v)
	case []object:
		return ec.marshalList(ctx, path, field, typ, len(v), func(i int) interface{} { return v[i] })
	case []string:
		return ec.marshalList(ctx, path, field, typ, len(v), func(i int) interface{} { return v[i] })
	default:
		ec.addError(ctx, path, fmt.Errorf("unsupported value %T", v))
		return nil
	}
}

func (ec *executionContext) marshalList(ctx context.Context, path ast.Path, field graphql.CollectedField, typ *ast.Type, n int, at func(int) interface{}) graphql.Marshaler {
	var elem *ast.Type
	if typ != nil {
		elem = typ.Elem
	}

	out := make(graphql.Array, 0, n)
	for i := 0; i < n; i++ {
		m := ec.marshalValue(ctx, appendPath(path, ast.PathIndex(i)), field, elem, at(i))
		if m == nil {
			if elem != nil && elem.NonNull {
				return nil
			}
			m = graphql.Null
		}
		out = append(out, m)
	}
	return out
}

func (ec *executionContext) null(ctx context.Context, path ast.Path, typ *ast.Type) graphql.Marshaler {
	if typ != nil && typ.NonNull {
		ec.addError(ctx, path, errors.New("must not be null"))
	}
	return nil
}

func (ec *executionContext) addError(ctx context.Context, path ast.Path, err error) {
	graphql.AddError(ctx, &gqlerror.Error{Err: err, Message: err.Error(), Path: path})
}

func appendPath(path ast.Path, el ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, el)
}
