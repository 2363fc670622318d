package planner

import (
	"errors"
	"testing"
)

func TestValidateUnderRoot(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		root    string
		wantErr bool
	}{
		{
			name: "direct child",
			path: "/tmp/abc/file.txt",
			root: "/tmp/abc",
		},
		{
			name: "nested descendant",
			path: "/tmp/abc/sub/dir/file.txt",
			root: "/tmp/abc",
		},
		{
			name:    "sibling sharing a textual prefix",
			path:    "/tmp/abc-other/file.txt",
			root:    "/tmp/abc",
			wantErr: true,
		},
		{
			name:    "root itself",
			path:    "/tmp/abc",
			root:    "/tmp/abc",
			wantErr: true,
		},
		{
			name:    "parent of root",
			path:    "/tmp",
			root:    "/tmp/abc",
			wantErr: true,
		},
		{
			name:    "escapes via dotdot",
			path:    "/tmp/abc/../outside/file.txt",
			root:    "/tmp/abc",
			wantErr: true,
		},
		{
			name: "redundant components cleaned",
			path: "/tmp/abc/./sub/../file.txt",
			root: "/tmp/abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUnderRoot(tt.path, tt.root)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateUnderRoot(%q, %q) error = %v, wantErr %v", tt.path, tt.root, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutsideRoot) {
				t.Errorf("error %v is not ErrOutsideRoot", err)
			}
		})
	}
}
