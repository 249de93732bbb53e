package browser

import (
	"slices"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr bool
	}{
		{
			name:   "https link",
			rawURL: "https://www.ueq-online.org/",
			want:   "https://www.ueq-online.org/",
		},
		{
			name:   "doi link with path",
			rawURL: "https://doi.org/10.1007/978-3-540-89350-9_6",
			want:   "https://doi.org/10.1007/978-3-540-89350-9_6",
		},
		{
			name:    "file scheme",
			rawURL:  "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "relative link",
			rawURL:  "ueq-online.org",
			wantErr: true,
		},
		{
			name:    "missing host",
			rawURL:  "https://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.rawURL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	const link = "https://osf.io/abcd/"

	tests := []struct {
		goos     string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantArgs: []string{"open", link}},
		{goos: "linux", wantArgs: []string{"xdg-open", link}},
		{goos: "windows", wantArgs: []string{"rundll32", "url.dll,FileProtocolHandler", link}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.Command(link)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("Command() args = %v, want %v", cmd.Args, tt.wantArgs)
			}
		})
	}
}
