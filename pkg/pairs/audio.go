package pairs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aidememoire/pkg/blob"
	"aidememoire/pkg/log"
	"aidememoire/pkg/speech"
)

// assetText pairs an audio identity with the text to speak for it.
type assetText struct {
	AudioID string
	Text    string
}

// audioManager keeps each record's audio identity backed by exactly one
// synthesized asset: it generates assets for minted identities and retires
// assets whose identity is no longer referenced.
type audioManager struct {
	blobs blob.Store
	synth speech.Synthesizer
	ns    string
}

// generate synthesizes and stores one asset per item, in order. The index
// write always precedes this call, so a failure here leaves records without
// playable audio rather than dangling index entries.
func (m *audioManager) generate(ctx context.Context, bucket string, items []assetText) error {
	for _, item := range items {
		audio, err := m.synth.Synthesize(ctx, item.Text)
		if err != nil {
			return fmt.Errorf("synthesize audio %s: %w", item.AudioID, err)
		}
		if err := m.blobs.Put(ctx, assetKey(m.ns, bucket, item.AudioID), audio, contentTypeAudio); err != nil {
			return fmt.Errorf("store audio %s: %w", item.AudioID, err)
		}
		log.Debug().Str("bucket", bucket).Str("audio_id", item.AudioID).Msg("Audio asset generated")
	}
	return nil
}

// retire deletes the asset for an audio identity. A missing asset is fine:
// the identity may have been minted but never synthesized.
func (m *audioManager) retire(ctx context.Context, bucket, audioID string) error {
	err := m.blobs.Delete(ctx, assetKey(m.ns, bucket, audioID))
	if err != nil && !errors.Is(err, blob.ErrNotFound) {
		return fmt.Errorf("retire audio %s: %w", audioID, err)
	}
	return nil
}

// retireAll deletes every asset under the bucket's prefix.
func (m *audioManager) retireAll(ctx context.Context, bucket string) error {
	keys, err := m.blobs.List(ctx, assetPrefix(m.ns, bucket))
	if err != nil {
		return fmt.Errorf("list audio assets: %w", err)
	}
	for _, key := range keys {
		if err := m.blobs.Delete(ctx, key); err != nil && !errors.Is(err, blob.ErrNotFound) {
			return fmt.Errorf("delete audio asset %s: %w", key, err)
		}
	}
	log.Debug().Str("bucket", bucket).Int("assets", len(keys)).Msg("Audio assets retired")
	return nil
}

// moveAll copies every asset from oldBucket's prefix to newBucket's and
// deletes the originals. Not transactional: a failure partway leaves assets
// split across both prefixes.
func (m *audioManager) moveAll(ctx context.Context, oldBucket, newBucket string) error {
	oldPrefix := assetPrefix(m.ns, oldBucket)
	keys, err := m.blobs.List(ctx, oldPrefix)
	if err != nil {
		return fmt.Errorf("list audio assets: %w", err)
	}
	for _, key := range keys {
		dst := assetPrefix(m.ns, newBucket) + strings.TrimPrefix(key, oldPrefix)
		if err := m.blobs.Copy(ctx, key, dst); err != nil {
			return fmt.Errorf("copy audio asset %s: %w", key, err)
		}
		if err := m.blobs.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete audio asset %s: %w", key, err)
		}
	}
	return nil
}

// GetAudio returns the asset bytes for (bucket, audioID).
func (s *Store) GetAudio(ctx context.Context, bucket, audioID string) ([]byte, error) {
	data, err := s.blobs.Get(ctx, assetKey(s.ns, bucket, audioID))
	if errors.Is(err, blob.ErrNotFound) {
		return nil, ErrAudioNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
