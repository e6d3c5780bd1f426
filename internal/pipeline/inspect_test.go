package pipeline

import (
	"reflect"
	"testing"
)

func TestListBlocks(t *testing.T) {
	tests := []struct {
		name   string
		source string
		level  int
		want   []string
	}{
		{
			name:   "level two headings",
			source: "# Blocks\n\n## cpu\n\ntext\n\n## memory\n\ntext\n",
			level:  2,
			want:   []string{"cpu", "memory"},
		},
		{
			name:   "inline code heading",
			source: "## `battery`\n\ntext\n",
			level:  2,
			want:   []string{"battery"},
		},
		{
			name:   "emphasized heading",
			source: "## *cpu*\n\ntext\n\n## **disk** usage\n\ntext\n",
			level:  2,
			want:   []string{"cpu", "disk usage"},
		},
		{
			name:   "linked heading",
			source: "## [net](https://example.com/net)\n\ntext\n",
			level:  2,
			want:   []string{"net"},
		},
		{
			name:   "other levels ignored",
			source: "# Top\n\n### Deep\n",
			level:  2,
			want:   nil,
		},
		{
			name:   "document order preserved",
			source: "## z\n\n## a\n\n## m\n",
			level:  2,
			want:   []string{"z", "a", "m"},
		},
		{
			name:   "heading inside fence ignored",
			source: "```\n## not-a-block\n```\n\n## real\n",
			level:  2,
			want:   []string{"real"},
		},
		{
			name:   "empty document",
			source: "",
			level:  2,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListBlocks([]byte(tt.source), tt.level)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
