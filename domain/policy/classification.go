package policy

import "strings"

// NormalizeClassification converts the loosely-typed classifier output into a
// single internal Classification. Callers upstream hand us either a bare label
// string, a decoded JSON object ({"classification": ..., "confidence": ...}),
// or an already-normalized Classification. Anything unrecognizable collapses
// to an empty label with zero confidence rather than an error.
func NormalizeClassification(input interface{}) Classification {
	switch v := input.(type) {
	case Classification:
		return Classification{Label: normalizeLabel(string(v.Label)), Confidence: normalizeConfidence(v.Confidence)}
	case *Classification:
		if v == nil {
			return Classification{}
		}
		return NormalizeClassification(*v)
	case string:
		return Classification{Label: normalizeLabel(v)}
	case ClassificationLabel:
		return Classification{Label: normalizeLabel(string(v))}
	case map[string]interface{}:
		var c Classification
		if raw, ok := v["classification"]; ok {
			if s, ok := raw.(string); ok {
				c.Label = normalizeLabel(s)
			}
		}
		if raw, ok := v["confidence"]; ok {
			switch n := raw.(type) {
			case float64:
				c.Confidence = normalizeConfidence(n)
			case int:
				c.Confidence = normalizeConfidence(float64(n))
			}
		}
		return c
	default:
		return Classification{}
	}
}

// normalizeLabel maps free-form label text onto the three known labels.
// Unknown labels are kept verbatim so callers can still display them.
func normalizeLabel(raw string) ClassificationLabel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "restrictive":
		return ClassRestrictive
	case "moderate":
		return ClassModerate
	case "permissive":
		return ClassPermissive
	case "":
		return ""
	}
	return ClassificationLabel(strings.TrimSpace(raw))
}

// normalizeConfidence accepts either a 0-1 or 0-100 confidence and returns
// the 0-100 form, clamped.
func normalizeConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v <= 1.0 {
		v *= 100
	}
	if v > 100 {
		return 100
	}
	return v
}
