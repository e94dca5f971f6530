package namespace

import (
	"reflect"
	"slices"
)

// Lookup resolves one attribute of obj.
//
// Objects answer for themselves. Other Go values are introspected: exported
// methods, string-keyed map entries, and exported struct fields (pointers are
// followed). ok is false only when the attribute is absent; a nil field or map
// value is reported as (nil, true).
func Lookup(obj any, name string) (value any, ok bool) {
	if obj == nil || name == "" {
		return nil, false
	}
	if o, isObj := obj.(Object); isObj {
		return o.Attr(name)
	}

	v := reflect.ValueOf(obj)
	if m := v.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		key := reflect.ValueOf(name).Convert(v.Type().Key())
		elem := v.MapIndex(key)
		if !elem.IsValid() {
			return nil, false
		}
		return valueOf(elem), true
	case reflect.Struct:
		field, found := v.Type().FieldByName(name)
		if !found || !field.IsExported() {
			return nil, false
		}
		fv, err := v.FieldByIndexErr(field.Index)
		if err != nil || !fv.CanInterface() {
			// promoted through a nil embedded pointer
			return nil, false
		}
		return valueOf(fv), true
	}

	return nil, false
}

// Dir lists the introspectable attribute names of obj, sorted and unique.
func Dir(obj any) []string {
	if obj == nil {
		return nil
	}
	if o, isObj := obj.(Object); isObj {
		return o.Dir()
	}

	var names []string
	v := reflect.ValueOf(obj)
	names = appendMethods(names, v.Type())

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			break
		}
		v = v.Elem()
		names = appendMethods(names, v.Type())
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			for _, k := range v.MapKeys() {
				names = append(names, k.String())
			}
		}
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if f.IsExported() {
				names = append(names, f.Name)
			}
		}
	}

	slices.Sort(names)
	return slices.Compact(names)
}

func appendMethods(names []string, t reflect.Type) []string {
	if t.Kind() == reflect.Interface {
		return names
	}
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}
	return names
}

// valueOf unwraps v. Nil references become untyped nil, except nil pointers
// whose type has methods: those stay typed so Dir can still list them.
func valueOf(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() && v.Type().NumMethod() == 0 {
			return nil
		}
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface()
}
