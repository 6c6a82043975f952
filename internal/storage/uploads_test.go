package storage

import (
	"strings"
	"testing"
)

func TestBuildFileNameSanitizes(t *testing.T) {
	cases := []struct {
		in         string
		wantPrefix string
		wantExt    string
	}{
		{"zdjęcie realizacji.jpg", "zdj_cie_realizacji_", ".jpg"},
		{"../../etc/passwd", "passwd_", ""},
		{"photo.PNG", "photo_", ".PNG"},
		{"a b/c d.webp", "c_d_", ".webp"},
	}

	for _, tc := range cases {
		got := buildFileName(tc.in)
		if !strings.HasPrefix(got, tc.wantPrefix) {
			t.Errorf("buildFileName(%q) = %q, want prefix %q", tc.in, got, tc.wantPrefix)
		}
		if !strings.HasSuffix(got, tc.wantExt) {
			t.Errorf("buildFileName(%q) = %q, want suffix %q", tc.in, got, tc.wantExt)
		}
		if strings.ContainsAny(got, "/\\ ") {
			t.Errorf("buildFileName(%q) = %q contains unsafe characters", tc.in, got)
		}
	}
}

func TestBuildFileNameEmptyStem(t *testing.T) {
	got := buildFileName(".jpg")
	if !strings.HasPrefix(got, "upload_") || !strings.HasSuffix(got, ".jpg") {
		t.Errorf("buildFileName(\".jpg\") = %q, want upload_<ts>.jpg", got)
	}
}
