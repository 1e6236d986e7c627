package jsoncodec

import "strings"

// externalName converts an internal camelCase field name to the
// external key used in encoded JSON, per the mapping in m (spec.md
// §4.8).
func (m FieldNameMapping) externalName(internal string) string {
	switch m.kind {
	case mappingSnakeCase:
		return toSnakeCase(internal)
	case mappingPascalCase:
		return toPascalCase(internal)
	case mappingKebabCase:
		return toKebabCase(internal)
	case mappingCustom:
		return m.transform(internal)
	default:
		return internal
	}
}

// internalName converts an external JSON key back to the internal
// field name a record codec expects, the inverse of externalName.
func (m FieldNameMapping) internalName(external string) string {
	switch m.kind {
	case mappingSnakeCase:
		return fromSnakeCase(external)
	case mappingPascalCase:
		return fromPascalCase(external)
	case mappingKebabCase:
		return fromKebabCase(external)
	case mappingCustom:
		return m.reverse(external)
	default:
		return external
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fromSnakeCase(s string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range s {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
			upperNext = false
			continue
		}
		upperNext = false
		b.WriteRune(r)
	}
	return b.String()
}

func toPascalCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] = b[0] - 'a' + 'A'
	}
	return string(b)
}

func fromPascalCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] = b[0] - 'A' + 'a'
	}
	return string(b)
}

func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

func fromKebabCase(s string) string {
	return fromSnakeCase(strings.ReplaceAll(s, "-", "_"))
}
