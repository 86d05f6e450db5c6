package pairs

import (
	"context"
	"strings"

	"aidememoire/pkg/models"
)

// GetAllPairs returns every record in the bucket in stored order. Records
// without a persisted audio identifier are reported with an empty one; this
// is a read, so no identifier is minted.
func (s *Store) GetAllPairs(ctx context.Context, bucket string) ([]models.Pair, error) {
	content, err := s.loadContent(ctx, bucket)
	if err != nil {
		return nil, err
	}

	pairs := make([]models.Pair, 0)
	for _, line := range parseLines(content) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		columns := parseColumns(line)
		if len(columns) < 2 {
			continue
		}

		pair := models.Pair{Prompt: columns[0], Response: columns[1]}
		if len(columns) >= 3 {
			pair.AudioID = columns[2]
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
