package extension

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/viant/x"
)

// Types is a registry of Go types addressable as "pkg.Name", where pkg is
// either the last element of the package path or the full path.
type Types struct {
	x.Registry
	aliases map[string]string
	mux     sync.RWMutex
}

// Register adds a data type to the registry
func (t *Types) Register(dataType *x.Type) {
	if dataType.PkgPath != "" {
		alias := dataType.PkgPath
		if idx := strings.LastIndex(alias, "/"); idx != -1 {
			alias = alias[idx+1:]
		}
		t.mux.Lock()
		if _, ok := t.aliases[alias]; !ok {
			t.aliases[alias] = dataType.PkgPath
		}
		t.mux.Unlock()
	}
	t.Registry.Register(dataType)
}

// Lookup returns a data type from the registry. The name may carry a "[]",
// "[][]", "map[string]" or "map[string][]" modifier; nil is returned for
// unknown types.
func (t *Types) Lookup(dataType string, options ...Option) *x.Type {
	temp := &Types{aliases: t.Aliases()}
	for _, opt := range options {
		opt(temp)
	}

	typeModifier := ""
	if idx := strings.LastIndex(dataType, "]"); idx != -1 {
		typeModifier = dataType[:idx+1]
		dataType = dataType[idx+1:]
	}

	if idx := strings.LastIndex(dataType, "."); idx != -1 {
		pkg, typeName := dataType[:idx], dataType[idx+1:]
		if pkgPath, ok := temp.aliases[pkg]; ok {
			pkg = pkgPath
		}
		dataType = fmt.Sprintf("%s.%s", pkg, typeName)
	}
	ret := t.Registry.Lookup(dataType)
	if ret == nil {
		return nil
	}
	rType := ret.Type

	switch strings.TrimSpace(typeModifier) {
	case "[]":
		rType = reflect.SliceOf(rType)
	case "[][]":
		rType = reflect.SliceOf(reflect.SliceOf(rType))
	case "map[string]":
		rType = reflect.MapOf(reflect.TypeOf(""), rType)
	case "map[string][]":
		rType = reflect.MapOf(reflect.TypeOf(""), reflect.SliceOf(rType))
	}
	if rType != ret.Type {
		return x.NewType(rType)
	}
	return ret
}

// Aliases returns a copy of the package alias table.
func (t *Types) Aliases() map[string]string {
	t.mux.RLock()
	defer t.mux.RUnlock()
	ret := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		ret[k] = v
	}
	return ret
}

// NewTypes creates a new types
func NewTypes(options ...x.RegistryOption) *Types {
	result := &Types{
		Registry: *x.NewRegistry(options...),
		aliases:  map[string]string{},
	}
	return result
}
