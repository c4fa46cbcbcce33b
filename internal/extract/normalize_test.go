package extract

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses whitespace and title cases",
			input: "ORGANIC   BABY  SPINACH",
			want:  "Organic Baby Spinach",
		},
		{
			name:  "strips leading sku code",
			input: "0042 WHOLE MILK",
			want:  "Whole Milk",
		},
		{
			name:  "strips trailing unit suffix",
			input: "Ground Beef lb",
			want:  "Ground Beef",
		},
		{
			name:  "strips abbreviated each suffix",
			input: "AVOCADO EA",
			want:  "Avocado",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain name only gets cased",
			input: "bananas",
			want:  "Bananas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
