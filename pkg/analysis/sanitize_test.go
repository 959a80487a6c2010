package analysis

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "A chef cooking pasta", "A chef cooking pasta"},
		{"html tags", "<b>A chef</b> cooking <i>pasta</i>", "A chef cooking pasta"},
		{"stray brackets", "a < b > c", "a b c"},
		{"whitespace runs", "  a\t\tb \n\n c  ", "a b c"},
		{"script tag", `<script>alert("x")</script>dancing`, `alert("x")dancing`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<div> nested <span>tags</span> </div>",
		"  lots \t of \n whitespace  ",
		"a<b>c",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
