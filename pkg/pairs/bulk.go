package pairs

import (
	"context"

	"aidememoire/pkg/log"
)

// BulkAppend merges raw record text into a bucket. Existing prompts keep
// their audio identity with the incoming response replacing the old one; new
// prompts are minted and synthesized in application order, in one batch.
// Malformed record text is rejected before anything is written.
func (s *Store) BulkAppend(ctx context.Context, bucket, content string) error {
	records, err := decodeRecords(content)
	if err != nil {
		return err
	}

	idx, err := s.loadIndex(ctx, bucket)
	if err != nil {
		return err
	}

	minted := idx.merge(records)

	if err := s.saveIndex(ctx, bucket, idx); err != nil {
		return err
	}

	// Bulk synthesis speaks the prompt text, while single-pair add speaks
	// the response. Inherited asymmetry, kept on purpose.
	items := make([]assetText, 0, len(minted))
	for _, p := range minted {
		items = append(items, assetText{AudioID: p.AudioID, Text: p.Prompt})
	}
	if err := s.audio.generate(ctx, bucket, items); err != nil {
		return err
	}

	log.Info().
		Str("bucket", bucket).
		Int("records", len(records)).
		Int("minted", len(minted)).
		Int("total", idx.len()).
		Msg("Bulk append applied")
	return nil
}
