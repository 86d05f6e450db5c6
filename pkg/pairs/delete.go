package pairs

import (
	"context"

	"aidememoire/pkg/log"
)

// DeletePair removes a pair and retires its audio asset. Deleting an unknown
// prompt succeeds without writing anything; callers cannot distinguish
// "deleted" from "was never there".
func (s *Store) DeletePair(ctx context.Context, bucket, prompt string) error {
	idx, err := s.loadIndex(ctx, bucket)
	if err != nil {
		return err
	}

	audioID, ok := idx.remove(prompt)
	if !ok {
		log.Debug().Str("bucket", bucket).Msg("Delete of unknown prompt ignored")
		return nil
	}

	if err := s.saveIndex(ctx, bucket, idx); err != nil {
		return err
	}

	if err := s.audio.retire(ctx, bucket, audioID); err != nil {
		return err
	}

	log.Info().Str("bucket", bucket).Msg("Pair deleted")
	return nil
}
