// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/qorix-group/tooling/internal/testutil"
)

func TestAuthor(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no config file at all
		want    string
		wantErr bool
	}{
		{
			name: "no config file",
			want: DefaultAuthor,
		},
		{
			name:    "author set",
			content: `{"author": "Some Corp"}`,
			want:    "Some Corp",
		},
		{
			name:    "author key missing",
			content: `{"years": [2024]}`,
			want:    DefaultAuthor,
		},
		{
			name:    "malformed json",
			content: `{"author": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.content != "" {
				path = testutil.MustWriteFile(t, t.TempDir(), "config.json", tt.content)
			}

			got, err := Author(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Author() should return an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Author() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Author() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthor_MissingFile(t *testing.T) {
	if _, err := Author(t.TempDir() + "/missing.json"); err == nil {
		t.Error("Author() on a missing config path should return an error")
	}
}
