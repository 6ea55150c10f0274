package policy

import "testing"

func TestNormalizeClassification_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  Classification
	}{
		{
			name:  "bare label string",
			input: "Moderate",
			want:  Classification{Label: ClassModerate},
		},
		{
			name:  "lowercase label string",
			input: "restrictive",
			want:  Classification{Label: ClassRestrictive},
		},
		{
			name:  "decoded json object",
			input: map[string]interface{}{"classification": "Permissive", "confidence": 75.0},
			want:  Classification{Label: ClassPermissive, Confidence: 75},
		},
		{
			name:  "fractional confidence",
			input: map[string]interface{}{"classification": "Moderate", "confidence": 0.8},
			want:  Classification{Label: ClassModerate, Confidence: 80},
		},
		{
			name:  "integer confidence",
			input: map[string]interface{}{"classification": "Moderate", "confidence": 60},
			want:  Classification{Label: ClassModerate, Confidence: 60},
		},
		{
			name:  "already normalized",
			input: Classification{Label: ClassModerate, Confidence: 50},
			want:  Classification{Label: ClassModerate, Confidence: 50},
		},
		{
			name:  "nil input",
			input: nil,
			want:  Classification{},
		},
		{
			name:  "empty map",
			input: map[string]interface{}{},
			want:  Classification{},
		},
		{
			name:  "unknown label kept verbatim",
			input: "Experimental",
			want:  Classification{Label: "Experimental"},
		},
		{
			name:  "confidence above scale clamped",
			input: map[string]interface{}{"classification": "Moderate", "confidence": 140.0},
			want:  Classification{Label: ClassModerate, Confidence: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeClassification(tt.input)
			if got.Label != tt.want.Label {
				t.Errorf("Label = %q, want %q", got.Label, tt.want.Label)
			}
			if got.Confidence != tt.want.Confidence {
				t.Errorf("Confidence = %.2f, want %.2f", got.Confidence, tt.want.Confidence)
			}
		})
	}
}

func TestAllDimensions_StableAndComplete(t *testing.T) {
	dims := AllDimensions()
	if len(dims) != 4 {
		t.Fatalf("Expected 4 dimensions, got %d", len(dims))
	}
	for _, d := range dims {
		if !d.IsValid() {
			t.Errorf("Dimension %q failed its own validity check", d)
		}
	}
	if Dimension("sentiment").IsValid() {
		t.Error("Unknown dimension passed validity check")
	}
}
