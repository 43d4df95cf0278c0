package mapping

import (
	"fmt"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/match"
	"jsonschema-bean-generator/internal/schema"
)

// maxSuggestions bounds "did you mean" lists.
const maxSuggestions = 2

// Validate checks a mapping file without touching any schema. Every
// problem is reported; nothing stops at the first error.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if _, _, err := mf.BaseRef(); err != nil {
		res.AddError(diagnostic.CodeInvalidTarget, fmt.Sprintf("invalid baseUri: %v", err), mf.BaseURI, "baseUri")
	}

	if mf.DefaultPackageName != "" && mf.BaseURI == "" {
		res.AddWarning(diagnostic.CodeMissingBaseURI,
			"defaultPackageName is ignored without baseUri", "", "defaultPackageName")
	}

	seen := map[schema.Ref]int{}

	for i := range mf.Mappings {
		validateEntry(res, mf, i, seen)
	}

	return res
}

func validateEntry(res *diagnostic.Diagnostics, mf *MappingFile, i int, seen map[schema.Ref]int) {
	e := &mf.Mappings[i]
	loc := fmt.Sprintf("mappings[%d]", i)

	target, err := mf.TargetRef(*e)
	if err != nil {
		res.AddError(diagnostic.CodeInvalidTarget, fmt.Sprintf("invalid target %q: %v", e.Target, err), e.Target, loc)
	} else {
		if first, dup := seen[target]; dup {
			res.AddError(diagnostic.CodeDuplicateTarget,
				fmt.Sprintf("target is already mapped by mappings[%d]", first), target.String(), loc)
		} else {
			seen[target] = i
		}
	}

	ref := e.Target
	if err == nil {
		ref = target.String()
	}

	if e.ClassName == "" {
		res.AddError(diagnostic.CodeMissingClassName, "mapping has no className", ref, loc)
	}

	names := []struct{ field, value string }{
		{"className", e.ClassName},
		{"generatedClassName", e.GeneratedClassName},
		{"extends", e.Extends},
	}

	for _, n := range names {
		if n.value == "" {
			continue
		}

		if _, err := java.Parse(n.value); err != nil {
			res.AddError(diagnostic.CodeInvalidClassName, fmt.Sprintf("%s: %v", n.field, err), ref, loc)
		}
	}

	for _, iface := range e.Implements {
		if _, err := java.Parse(iface); err != nil {
			res.AddError(diagnostic.CodeInvalidClassName, fmt.Sprintf("implements: %v", err), ref, loc)
		}
	}

	for _, mod := range e.Modifiers {
		if _, err := java.ParseModifier(mod); err != nil {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnknownModifier,
				Message:     err.Error(),
				Ref:         ref,
				Location:    loc,
				Suggestions: match.Suggest(mod, java.ModifierKeywords(), maxSuggestions),
			})
		}
	}

	if e.EnumStyle != "" {
		if _, err := ParseEnumStyle(e.EnumStyle); err != nil {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnknownEnumStyle,
				Message:     err.Error(),
				Ref:         ref,
				Location:    loc,
				Suggestions: match.Suggest(e.EnumStyle, EnumStyles(), maxSuggestions),
			})
		}
	}
}
