package textnorm

import "testing"

func TestNormalize_PersianDigits(t *testing.T) {
	persian := []rune("۰۱۲۳۴۵۶۷۸۹")
	arabic := []rune("٠١٢٣٤٥٦٧٨٩")

	for i := 0; i < 10; i++ {
		want := string(rune('0' + i))
		if got := Normalize(string(persian[i])); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", string(persian[i]), got, want)
		}
		if got := Normalize(string(arabic[i])); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", string(arabic[i]), got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"persian date", "۱۴۰۲/۰۵/۱۱", "1402/05/11"},
		{"fraction slash", "۱۴۰۳⁄۰۸⁄۰۹", "1403/08/09"},
		{"full-width slash", "1402／05／11", "1402/05/11"},
		{"en dash", "1402–05–11", "1402-05-11"},
		{"em dash and minus", "1402—05−11", "1402-05-11"},
		{"arabic separators", "۱٫۵ و ۱٬۰۰۰", "1.5 و 1.000"},
		{"comma", "1,5", "1.5"},
		{"zwnj folded to space", "می‌خواهم", "می خواهم"},
		{"whitespace collapsed", "  1402 \t 05\n11  ", "1402 05 11"},
		{"ascii unchanged", "2023-08-02T12:00:00Z", "2023-08-02T12:00:00Z"},
		{"persian word preserved", "۱۴۰۲/۰۵/۱۱ ساعت ۱۲:۰۵", "1402/05/11 ساعت 12:05"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeForDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips persian word", "۱۴۰۲/۰۵/۱۱ ساعت ۱۲:۰۵", "1402/05/11 12:05"},
		{"strips latin letters", "on 2023-08-02", "2023-08-02"},
		{"keeps grammar chars", "1402.5.1 12:05:30", "1402.5.1 12:05:30"},
		{"collapses after strip", "1402/05/11 در 12:00", "1402/05/11 12:00"},
		{"only words", "فردا", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeForDate(tt.input); got != tt.want {
				t.Errorf("NormalizeForDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "۱۴۰۲٫۵—۱۱‌ساعت"
	first := Normalize(input)
	for i := 0; i < 5; i++ {
		if got := Normalize(input); got != first {
			t.Fatalf("Normalize not deterministic: %q then %q", first, got)
		}
	}
}
