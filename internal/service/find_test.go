package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/showcase/internal/carousel"
)

func TestFind(t *testing.T) {
	items := []carousel.Item{
		{Key: "nextjs", Title: "Next.js"},
		{Key: "react", Title: "React"},
		{Key: "postgresql", Title: "PostgreSQL"},
		{Key: "kubernetes", Title: "Kubernetes"},
		{Key: "google-cloud", Title: "Google Cloud"},
	}

	cases := []struct {
		query string
		want  int
	}{
		{"react", 1},
		{"  REACT ", 1},
		{"post", 2},
		{"kubernetis", 3},
		{"cloud", 4},
		{"nextjs", 0},
		{"postgres", 2},
		{"zzzzzz", -1},
		{"", -1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Find(items, tc.query), "query %q", tc.query)
	}
	require.Equal(t, -1, Find(nil, "react"))
}
