// Package tsconfig implements semantic validation of compiler-config files.
package tsconfig

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
)

// Diagnostic codes, aligned with the compiler's own numbering where one exists.
const (
	codeParseFailure   = "TS5014"
	codeUnknownOption  = "TS5023"
	codeWrongValueType = "TS5024"
	codeEnumMismatch   = "TS6046"
	codeUnreadableFile = "TS5083"
	codeCircularExtend = "TS18000"
)

var _ ports.Validator = (*Validator)(nil)

// Validator implements ports.Validator for tsconfig-family files. It checks
// keys against a schema, resolves path-valued options against the config's
// directory, and follows extends chains.
type Validator struct {
	fsys fs.FileSystem
}

// NewValidator creates a Validator reading extended configs through fsys.
func NewValidator(fsys fs.FileSystem) *Validator {
	return &Validator{fsys: fsys}
}

// Validate checks the raw config text semantically. Diagnostics emitted for
// the document itself carry an empty SourcePath; the caller fills it in with
// the resolved config path. Diagnostics from extended files carry the path of
// the file that produced them.
//
// Option values use JSON-native types (bool, string, float64, []any,
// map[string]any) so that fresh results compare deep-equal with results that
// round-tripped through the cache.
func (v *Validator) Validate(raw []byte, baseDir string) (domain.Options, []domain.Diagnostic, error) {
	opts, diags := v.validateDocument(raw, baseDir, "", map[string]struct{}{})
	if len(diags) > 0 {
		return nil, diags, nil
	}
	return opts, nil, nil
}

func (v *Validator) validateDocument(raw []byte, fileDir, filePath string, seen map[string]struct{}) (domain.Options, []domain.Diagnostic) {
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, []domain.Diagnostic{{
			Message:    "config file must contain a JSON object",
			Code:       codeParseFailure,
			SourcePath: filePath,
		}}
	}

	var diags []domain.Diagnostic
	options := domain.Options{}

	fields := doc.Map()

	// Parent first so the extending file overrides inherited options.
	if extends, ok := fields["extends"]; ok {
		parentOpts, parentDiags := v.resolveExtends(extends, fileDir, filePath, seen)
		diags = append(diags, parentDiags...)
		maps.Copy(options, parentOpts)
	}

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if _, ok := topLevelSchema[key]; !ok {
			diags = append(diags, domain.Diagnostic{
				Message:    fmt.Sprintf("unknown option '%s'", key),
				Code:       codeUnknownOption,
				SourcePath: filePath,
			})
		}
	}

	for _, key := range []string{"files", "include", "exclude"} {
		val, ok := fields[key]
		if ok && !isStringArray(val) {
			diags = append(diags, domain.Diagnostic{
				Message:    fmt.Sprintf("'%s' requires a value of type list of strings", key),
				Code:       codeWrongValueType,
				SourcePath: filePath,
			})
		}
	}

	if co, ok := fields["compilerOptions"]; ok {
		coOpts, coDiags := v.validateCompilerOptions(co, fileDir, filePath)
		diags = append(diags, coDiags...)
		maps.Copy(options, coOpts)
	}

	return options, diags
}

func (v *Validator) validateCompilerOptions(co gjson.Result, fileDir, filePath string) (domain.Options, []domain.Diagnostic) {
	if !co.IsObject() {
		return nil, []domain.Diagnostic{{
			Message:    "'compilerOptions' requires a value of type object",
			Code:       codeWrongValueType,
			SourcePath: filePath,
		}}
	}

	var diags []domain.Diagnostic
	options := domain.Options{}
	values := co.Map()

	for _, key := range slices.Sorted(maps.Keys(values)) {
		spec, ok := compilerOptionSchema[key]
		if !ok {
			diags = append(diags, domain.Diagnostic{
				Message:    fmt.Sprintf("unknown compiler option '%s'", key),
				Code:       codeUnknownOption,
				SourcePath: filePath,
			})
			continue
		}

		normalized, diag := normalizeOption(key, spec, values[key], fileDir)
		if diag != nil {
			diag.SourcePath = filePath
			diags = append(diags, *diag)
			continue
		}
		options[key] = normalized
	}

	return options, diags
}

// resolveExtends loads and validates the extended config named by the
// "extends" value, relative to the extending file's directory.
func (v *Validator) resolveExtends(extends gjson.Result, fileDir, filePath string, seen map[string]struct{}) (domain.Options, []domain.Diagnostic) {
	if extends.Type != gjson.String {
		return nil, []domain.Diagnostic{{
			Message:    "'extends' requires a value of type string",
			Code:       codeWrongValueType,
			SourcePath: filePath,
		}}
	}

	parentPath := extends.String()
	if !filepath.IsAbs(parentPath) {
		parentPath = filepath.Join(fileDir, parentPath)
	}
	if filepath.Ext(parentPath) == "" {
		parentPath += domain.ConfigExtension
	}
	parentPath = filepath.Clean(parentPath)

	if _, ok := seen[parentPath]; ok {
		return nil, []domain.Diagnostic{{
			Message:    fmt.Sprintf("circularity detected while resolving configuration: %s", parentPath),
			Code:       codeCircularExtend,
			SourcePath: filePath,
		}}
	}
	seen[parentPath] = struct{}{}

	raw, err := v.fsys.ReadFile(parentPath)
	if err != nil {
		return nil, []domain.Diagnostic{{
			Message:    fmt.Sprintf("cannot read file '%s'", parentPath),
			Code:       codeUnreadableFile,
			SourcePath: filePath,
		}}
	}

	if !gjson.ValidBytes(raw) {
		return nil, []domain.Diagnostic{{
			Message:    fmt.Sprintf("failed to parse file '%s'", parentPath),
			Code:       codeParseFailure,
			SourcePath: filePath,
		}}
	}

	return v.validateDocument(raw, filepath.Dir(parentPath), parentPath, seen)
}

// normalizeOption checks one option value against its spec and returns the
// normalized value, or a diagnostic (with SourcePath left for the caller).
func normalizeOption(key string, spec optionSpec, val gjson.Result, fileDir string) (any, *domain.Diagnostic) {
	wrongType := &domain.Diagnostic{
		Message: fmt.Sprintf("compiler option '%s' requires a value of type %s", key, spec.typeName()),
		Code:    codeWrongValueType,
	}

	switch spec.Kind {
	case kindBool:
		if val.Type != gjson.True && val.Type != gjson.False {
			return nil, wrongType
		}
		return val.Bool(), nil

	case kindString:
		if val.Type != gjson.String {
			return nil, wrongType
		}
		return val.String(), nil

	case kindNumber:
		if val.Type != gjson.Number {
			return nil, wrongType
		}
		return val.Float(), nil

	case kindEnum:
		if val.Type != gjson.String {
			return nil, wrongType
		}
		lowered := strings.ToLower(val.String())
		if !slices.Contains(spec.Enum, lowered) {
			return nil, &domain.Diagnostic{
				Message: fmt.Sprintf("argument for '%s' option must be one of: %s", key, strings.Join(spec.Enum, ", ")),
				Code:    codeEnumMismatch,
			}
		}
		return lowered, nil

	case kindPath:
		if val.Type != gjson.String {
			return nil, wrongType
		}
		return resolvePath(val.String(), fileDir), nil

	case kindStringList:
		if !isStringArray(val) {
			return nil, wrongType
		}
		items := make([]any, 0, len(val.Array()))
		for _, item := range val.Array() {
			items = append(items, item.String())
		}
		return items, nil

	case kindPathList:
		if !isStringArray(val) {
			return nil, wrongType
		}
		items := make([]any, 0, len(val.Array()))
		for _, item := range val.Array() {
			items = append(items, resolvePath(item.String(), fileDir))
		}
		return items, nil

	case kindPathMap:
		if !val.IsObject() {
			return nil, wrongType
		}
		patterns := val.Map()
		mapped := make(map[string]any, len(patterns))
		for _, pattern := range slices.Sorted(maps.Keys(patterns)) {
			targets := patterns[pattern]
			if !isStringArray(targets) {
				return nil, wrongType
			}
			items := make([]any, 0, len(targets.Array()))
			for _, item := range targets.Array() {
				items = append(items, item.String())
			}
			mapped[pattern] = items
		}
		return mapped, nil

	default:
		return nil, wrongType
	}
}

// resolvePath makes a path-valued option absolute against the config's directory.
func resolvePath(path, fileDir string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(fileDir, path)
}

// isStringArray reports whether val is a JSON array whose elements are all strings.
func isStringArray(val gjson.Result) bool {
	if !val.IsArray() {
		return false
	}
	for _, item := range val.Array() {
		if item.Type != gjson.String {
			return false
		}
	}
	return true
}
