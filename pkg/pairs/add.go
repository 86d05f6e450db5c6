package pairs

import (
	"context"

	"aidememoire/pkg/log"
)

// AddPair writes one pair into a bucket. An existing prompt keeps its audio
// identity and only the response is replaced, without re-synthesis; a new
// prompt gets a fresh identity with audio synthesized from the response text.
func (s *Store) AddPair(ctx context.Context, bucket, prompt, response string) error {
	idx, err := s.loadIndex(ctx, bucket)
	if err != nil {
		return err
	}

	audioID, minted := idx.upsert(prompt, response)

	if err := s.saveIndex(ctx, bucket, idx); err != nil {
		return err
	}

	if minted {
		if err := s.audio.generate(ctx, bucket, []assetText{{AudioID: audioID, Text: response}}); err != nil {
			return err
		}
	}

	log.Info().Str("bucket", bucket).Bool("minted", minted).Msg("Pair added")
	return nil
}
