package blenv

import (
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// fieldKeys maps struct fields of a schema to the environment variable they are read from, prefixes included.
type fieldKeys struct {
	byPath map[string]string // dotted Go field path below the root, e.g. "Log.Level"
	byName map[string]string // bare Go field name, first occurrence wins
}

type schemaField struct {
	path, name, own string
}

// resolveKeys pairs the fields of T with the keys the env parser resolves for them. The parser reports its
// fields in declaration order, the same order walkSchema visits them.
func resolveKeys[T any](o *options, environ map[string]string) fieldKeys {
	keys := fieldKeys{byPath: map[string]string{}, byName: map[string]string{}}

	params, err := env.GetFieldParamsWithOptions(new(T), o.envOptions(environ))
	if err != nil {
		return keys
	}

	var fields []schemaField
	walkSchema(reflect.TypeFor[T](), "", &fields)

	for i, p := range params {
		if i >= len(fields) || fields[i].own != p.OwnKey {
			break
		}

		keys.byPath[fields[i].path] = p.Key
		if _, ok := keys.byName[fields[i].name]; !ok {
			keys.byName[fields[i].name] = p.Key
		}
	}

	return keys
}

func walkSchema(t reflect.Type, ns string, out *[]schemaField) {
	if t.Kind() != reflect.Struct {
		return
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		own, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		if own == "-" {
			continue
		}

		path := f.Name
		if ns != "" {
			path = ns + "." + f.Name
		}

		if own != "" {
			*out = append(*out, schemaField{path: path, name: f.Name, own: own})
		}

		walkSchema(f.Type, path, out)
	}
}

// forName returns the key of the field called name, or name itself.
func (k fieldKeys) forName(name string) string {
	if key, ok := k.byName[name]; ok {
		return key
	}

	return name
}

// forNamespace resolves a validator struct namespace, falling back to the tag based namespace.
func (k fieldKeys) forNamespace(structNS, tagNS string) string {
	if key, ok := k.byPath[fieldPath(structNS)]; ok {
		return key
	}

	return fieldPath(tagNS)
}
