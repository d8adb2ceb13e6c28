package translit

import "testing"

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want string
	}{
		{name: "alfa", r: 'a', want: "ⲁ"},
		{name: "eta is capital H", r: 'H', want: "ⲏ"},
		{name: "shai", r: 'y', want: "ϣ"},
		{name: "ti", r: 'Y', want: "ϯ"},
		{name: "plus becomes combining macron", r: '+', want: "̄"},
		{name: "full stop becomes middle dot", r: '.', want: "·"},
		{name: "iota sigma ligature", r: 'E', want: "ⲓ︤ⲥ︥"},
		{name: "chi sigma ligature", r: 'F', want: "ⲭ︤ⲥ︥"},
		{name: "pneuma ligature", r: 'D', want: "ⲡ︤ⲛ︦ⲁ︥"},
		{name: "space passes through", r: ' ', want: " "},
		{name: "digit passes through", r: '7', want: "7"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Convert(tt.r); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestConvertText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain word",
			text: "anok",
			want: "ⲁⲛⲟⲕ",
		},
		{
			name: "header line untouched",
			text: "# page 12\nanok",
			want: "# page 12\nⲁⲛⲟⲕ",
		},
		{
			name: "parenthetical annotation untouched",
			text: "an(ok)a",
			want: "ⲁⲛ(ok)ⲁ",
		},
		{
			name: "parenthetical spans lines",
			text: "a(b\nc)d",
			want: "ⲁ(b\nc)ⲇ",
		},
		{
			name: "supralinear stroke",
			text: "n+",
			want: "ⲛ̄",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertText(tt.text); got != tt.want {
				t.Errorf("ConvertText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
