package repository

import (
	"testing"
)

func TestMergeProfile(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		profile map[string]interface{}
		want    map[string]interface{}
	}{
		{
			name:    "profile fields pass through",
			email:   "a@x.com",
			profile: map[string]interface{}{"name": "Alice", "phone": "123"},
			want:    map[string]interface{}{"email": "a@x.com", "name": "Alice", "phone": "123"},
		},
		{
			name:    "body email cannot override the key",
			email:   "a@x.com",
			profile: map[string]interface{}{"email": "evil@x.com", "name": "Alice"},
			want:    map[string]interface{}{"email": "a@x.com", "name": "Alice"},
		},
		{
			name:    "body _id is dropped",
			email:   "a@x.com",
			profile: map[string]interface{}{"_id": "abc", "name": "Alice"},
			want:    map[string]interface{}{"email": "a@x.com", "name": "Alice"},
		},
		{
			name:    "empty body still sets the email key",
			email:   "a@x.com",
			profile: nil,
			want:    map[string]interface{}{"email": "a@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeProfile(tt.email, tt.profile)

			if len(got) != len(tt.want) {
				t.Fatalf("set doc has %d keys, want %d: %v", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("set[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}
