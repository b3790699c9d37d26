package picasa

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestStarredSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "Starred and unstarred sections",
			content: "[a.jpg]\nstar=yes\n[b.jpg]\nstar=no\n",
			want:    []string{"a.jpg"},
		},
		{
			name:    "Case-insensitive marker",
			content: "[a.jpg]\nSTAR=Yes\n",
			want:    []string{"a.jpg"},
		},
		{
			name:    "Other keys and comments are ignored",
			content: "; written by Picasa\n[Picasa]\nname=Holiday\n\n[c.jpg]\nrotate=rotate(1)\nstar=yes\nfilters=crop64=1\n",
			want:    []string{"c.jpg"},
		},
		{
			name:    "Marker outside any section",
			content: "star=yes\n[d.jpg]\n",
			want:    nil,
		},
		{
			name:    "Repeated marker counts once",
			content: "[e.jpg]\nstar=yes\nstar=yes\n",
			want:    []string{"e.jpg"},
		},
		{
			name:    "Whitespace and CRLF",
			content: "  [f g.jpg]  \r\n  star=yes \r\n",
			want:    []string{"f g.jpg"},
		},
		{
			name:    "Section names pass through unchanged",
			content: "[../up.jpg]\nstar=yes\n[sub/dir.jpg]\nstar=yes\n",
			want:    []string{"../up.jpg", "sub/dir.jpg"},
		},
		{
			name:    "Generic key=value match is not enough",
			content: "[h.jpg]\nstar = yes\nstarred=yes\n",
			want:    nil,
		},
		{
			name:    "Byte order mark",
			content: "\ufeff[i.jpg]\nstar=yes\n",
			want:    []string{"i.jpg"},
		},
		{
			name:    "Empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StarredSections(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("StarredSections() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StarredSections() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadStarred(t *testing.T) {
	t.Run("No sidecar", func(t *testing.T) {
		got, err := ReadStarred(t.TempDir())
		if err != nil {
			t.Fatalf("ReadStarred() error = %v", err)
		}
		if got != nil {
			t.Errorf("ReadStarred() = %v, want nil", got)
		}
	})

	t.Run("Sidecar present", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".picasa.ini"), []byte("[a.jpg]\nstar=yes\n"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := ReadStarred(dir)
		if err != nil {
			t.Fatalf("ReadStarred() error = %v", err)
		}
		if !reflect.DeepEqual(got, []string{"a.jpg"}) {
			t.Errorf("ReadStarred() = %v, want [a.jpg]", got)
		}
	})
}

func TestIsOriginalsDir(t *testing.T) {
	for name, want := range map[string]bool{
		".picasaoriginals":  true,
		".PicasaOriginals":  true,
		"picasaoriginals":   false,
		".picasaoriginals2": false,
		"holiday":           false,
	} {
		if got := IsOriginalsDir(name); got != want {
			t.Errorf("IsOriginalsDir(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestStarredSections_LongLine(t *testing.T) {
	content := "[a.jpg]\nfaces=" + strings.Repeat("rect64(3f845bcb59418507),8e62398ebda8c1a5;", 4000) + "\nstar=yes\n[b.jpg]\nstar=yes\n"
	if len(content) <= 64*1024 {
		t.Fatalf("test content is only %d bytes", len(content))
	}

	got, err := StarredSections(strings.NewReader(content))
	if err != nil {
		t.Fatalf("StarredSections() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("StarredSections() = %q, want [a.jpg b.jpg]", got)
	}
}
