package lotlist

import (
	"regexp"
	"testing"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lotNo string
		want  string
	}{
		{lotNo: "1601", want: "1601"},
		{lotNo: "A-12_b", want: "A-12_b"},
		{lotNo: "16 ", want: "16"},
		{lotNo: " 16", want: "16"},
		{lotNo: "12/34", want: "12_34"},
		{lotNo: `a\b:c*d?e"f<g>h|i`, want: "a_b_c_d_e_f_g_h_i"},
		{lotNo: "lot 7 b", want: "lot_7_b"},
		{lotNo: "tab\there", want: "tab_here"},
		{lotNo: "..", want: "__"},
		{lotNo: "Café", want: "Café"},
		{lotNo: "Лот 7", want: "Лот_7"},
		{lotNo: "16/é", want: "16_é"},
		{lotNo: "lot№5", want: "lot_5"},
	}

	for _, tt := range tests {
		t.Run(tt.lotNo, func(t *testing.T) {
			t.Parallel()

			if got := Identifier(tt.lotNo); got != tt.want {
				t.Errorf("Identifier(%q) = %q, want %q", tt.lotNo, got, tt.want)
			}
		})
	}
}

func TestIdentifier_OnlySafeCharactersRemain(t *testing.T) {
	t.Parallel()

	safe := regexp.MustCompile(`^[\p{L}\p{N}_-]*$`)
	inputs := []string{`/`, `\`, `:`, `*`, `?`, `"`, `<`, `>`, `|`, " ", "a b/c\\d", "\t16\n", "x|y|z", "é/.."}

	for _, in := range inputs {
		if got := Identifier(in); !safe.MatchString(got) {
			t.Errorf("Identifier(%q) = %q, contains unsafe characters", in, got)
		}
	}
}

func TestListingName(t *testing.T) {
	t.Parallel()

	if got := ListingName("1601", ".txt"); got != "Lot_1601.txt" {
		t.Errorf("ListingName() = %q, want %q", got, "Lot_1601.txt")
	}
	if got := ListingName("16_2", ".jpg"); got != "Lot_16_2.jpg" {
		t.Errorf("ListingName() = %q, want %q", got, "Lot_16_2.jpg")
	}
}
