package outfits

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseGeneration(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Generation
		wantErr bool
	}{
		{
			name: "well formed",
			raw:  `{"recommendations":[{"clothingItemId":"A"},{"clothingItemId":"B"}],"reason":"Balanced"}`,
			want: Generation{
				Recommendations: []RawSuggestion{{"clothingItemId": "A"}, {"clothingItemId": "B"}},
				Reason:          "Balanced",
			},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"recommendations\":[{\"clothingItemId\":\"A\"}]}\n```",
			want: Generation{
				Recommendations: []RawSuggestion{{"clothingItemId": "A"}},
			},
		},
		{
			name: "non object elements are kept as nil",
			raw:  `{"recommendations":["A", 3, null, {"clothingItemId":"B"}]}`,
			want: Generation{
				Recommendations: []RawSuggestion{nil, nil, nil, {"clothingItemId": "B"}},
			},
		},
		{
			name: "non string reason is ignored",
			raw:  `{"recommendations":[],"reason":{"text":"x"}}`,
			want: Generation{Recommendations: []RawSuggestion{}},
		},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "null", raw: "null", wantErr: true},
		{name: "array top level", raw: `[{"clothingItemId":"A"}]`, wantErr: true},
		{name: "missing recommendations", raw: `{"reason":"hi"}`, wantErr: true},
		{name: "recommendations not array", raw: `{"recommendations":{"clothingItemId":"A"}}`, wantErr: true},
		{name: "truncated json", raw: `{"recommendations":[{"clothingItemId":"A"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGeneration([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedGeneration) {
					t.Fatalf("expected ErrMalformedGeneration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGeneration: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParseGeneration mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateOutput(t *testing.T) {
	candidates := []string{"a", "b", "c"}

	res := ValidateOutput(candidates, []byte("```json\n{\"recommendations\":[{\"clothingItemId\":\"a\"},{\"clothingItemId\":\"c\"}]}\n```"))
	if !res.OK() || len(res.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %+v", res)
	}

	res = ValidateOutput(candidates, []byte("not json"))
	if res.Failure != FailureMalformedOutput {
		t.Fatalf("expected malformed output, got %+v", res)
	}

	res = ValidateOutput([]string{"a"}, []byte("not json"))
	if res.Failure != FailureInsufficientCandidates {
		t.Fatalf("expected insufficient candidates, got %+v", res)
	}
}
