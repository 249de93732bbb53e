package styles

import "testing"

func TestLinkIcon(t *testing.T) {
	tests := []struct {
		category string
		dark     bool
		want     string
	}{
		{category: "website", dark: false, want: "◎"},
		{category: "website", dark: true, want: "◉"},
		{category: "DOI", dark: true, want: "▮"},
		{category: "git", dark: false, want: "◇"},
		{category: "mailing-list", dark: true, want: ""},
		{category: "", dark: false, want: ""},
	}

	for _, tt := range tests {
		if got := LinkIcon(tt.category, tt.dark); got != tt.want {
			t.Errorf("LinkIcon(%q, %v) = %q, want %q", tt.category, tt.dark, got, tt.want)
		}
	}
}
