package pairs

import (
	"context"
	"math/rand/v2"
	"strings"

	"aidememoire/pkg/models"
)

// GetRandomPair returns one pair chosen uniformly over the bucket's non-blank
// records. Returns ErrBucketNotFound when the bucket is absent or empty.
// Selection is independent per call; no seed is persisted.
func (s *Store) GetRandomPair(ctx context.Context, bucket string) (models.Pair, error) {
	content, err := s.loadContent(ctx, bucket)
	if err != nil {
		return models.Pair{}, err
	}

	var lines []string
	for _, line := range parseLines(content) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return models.Pair{}, ErrBucketNotFound
	}

	columns := parseColumns(lines[rand.IntN(len(lines))])
	if len(columns) < 2 {
		return models.Pair{}, ErrBucketNotFound
	}

	pair := models.Pair{Prompt: columns[0], Response: columns[1]}
	if len(columns) >= 3 {
		pair.AudioID = columns[2]
	}
	return pair, nil
}
