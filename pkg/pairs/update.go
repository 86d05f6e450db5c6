package pairs

import (
	"context"

	"aidememoire/pkg/log"
)

// UpdatePair rewrites the pair located by oldPrompt. When the prompt text is
// unchanged only the response is replaced and the audio identity is kept.
// When the prompt is renamed a fresh identity is minted: the new index state
// is persisted first, then new audio is synthesized, then the old asset is
// retired, so a crash in between leaves a record without playable audio
// rather than two index entries. An unknown oldPrompt is a silent no-op.
func (s *Store) UpdatePair(ctx context.Context, bucket, oldPrompt, newPrompt, newResponse string) error {
	idx, err := s.loadIndex(ctx, bucket)
	if err != nil {
		return err
	}

	if oldPrompt == newPrompt {
		e, ok := idx.get(oldPrompt)
		if !ok {
			log.Debug().Str("bucket", bucket).Msg("Update of unknown prompt ignored")
			return nil
		}
		e.response = newResponse
		return s.saveIndex(ctx, bucket, idx)
	}

	newID, retired, ok := idx.rename(oldPrompt, newPrompt, newResponse)
	if !ok {
		log.Debug().Str("bucket", bucket).Msg("Update of unknown prompt ignored")
		return nil
	}

	if err := s.saveIndex(ctx, bucket, idx); err != nil {
		return err
	}

	if err := s.audio.generate(ctx, bucket, []assetText{{AudioID: newID, Text: newResponse}}); err != nil {
		return err
	}

	for _, id := range retired {
		if err := s.audio.retire(ctx, bucket, id); err != nil {
			return err
		}
	}

	log.Info().Str("bucket", bucket).Int("retired", len(retired)).Msg("Pair renamed")
	return nil
}
