package pairs

import (
	"strings"

	"github.com/google/uuid"
)

// newAudioID mints a globally unique audio identifier.
func newAudioID() string {
	return uuid.NewString()
}

// entry is one record's payload. minted marks an audio identifier generated
// during the current load and not yet persisted; it becomes durable only when
// the index is written back.
type entry struct {
	response string
	audioID  string
	minted   bool
}

// index is the in-memory form of one bucket: prompt-keyed entries plus the
// prompt order they were read in, so serialization is deterministic. New
// prompts append at the end.
type index struct {
	prompts []string
	entries map[string]*entry
}

func newIndex() *index {
	return &index{entries: make(map[string]*entry)}
}

// parseIndex builds an index from a bucket blob. Rows with fewer than two
// fields are skipped; rows without an audio identifier get a fresh one,
// flagged minted (legacy two-field data self-heals on the next write).
func parseIndex(content string) *index {
	idx := newIndex()
	for _, line := range parseLines(content) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		columns := parseColumns(line)
		if len(columns) < 2 {
			continue
		}

		audioID := ""
		if len(columns) >= 3 {
			audioID = columns[2]
		}
		minted := false
		if audioID == "" {
			audioID = newAudioID()
			minted = true
		}
		idx.put(columns[0], columns[1], audioID, minted)
	}
	return idx
}

// put inserts or replaces an entry wholesale. Prompts stay unique; a repeated
// prompt keeps its original position (last write wins on content).
func (x *index) put(prompt, response, audioID string, minted bool) {
	if e, ok := x.entries[prompt]; ok {
		e.response = response
		e.audioID = audioID
		e.minted = minted
		return
	}
	x.prompts = append(x.prompts, prompt)
	x.entries[prompt] = &entry{response: response, audioID: audioID, minted: minted}
}

// get returns the entry for prompt, if present.
func (x *index) get(prompt string) (*entry, bool) {
	e, ok := x.entries[prompt]
	return e, ok
}

// upsert writes one pair. An existing prompt keeps its audio identity and only
// the response is replaced; a new prompt mints a fresh identity.
func (x *index) upsert(prompt, response string) (audioID string, mintedNow bool) {
	if e, ok := x.entries[prompt]; ok {
		e.response = response
		return e.audioID, false
	}
	id := newAudioID()
	x.put(prompt, response, id, true)
	return id, true
}

// rename moves oldPrompt's record to newPrompt with a fresh audio identity,
// keeping the record's position. Identities no longer referenced afterwards
// (the old one, plus any entry newPrompt displaced) are returned for
// retirement. Reports ok=false when oldPrompt is absent.
func (x *index) rename(oldPrompt, newPrompt, response string) (newID string, retired []string, ok bool) {
	old, exists := x.entries[oldPrompt]
	if !exists {
		return "", nil, false
	}

	if !old.minted {
		retired = append(retired, old.audioID)
	}
	if displaced, clash := x.entries[newPrompt]; clash {
		if !displaced.minted {
			retired = append(retired, displaced.audioID)
		}
		x.dropPrompt(newPrompt)
	}

	for i, p := range x.prompts {
		if p == oldPrompt {
			x.prompts[i] = newPrompt
			break
		}
	}
	delete(x.entries, oldPrompt)

	newID = newAudioID()
	x.entries[newPrompt] = &entry{response: response, audioID: newID, minted: true}
	return newID, retired, true
}

// remove deletes a prompt's record, returning its audio identity for
// retirement. Reports ok=false when the prompt is absent.
func (x *index) remove(prompt string) (audioID string, ok bool) {
	e, exists := x.entries[prompt]
	if !exists {
		return "", false
	}
	x.dropPrompt(prompt)
	delete(x.entries, prompt)
	return e.audioID, true
}

func (x *index) dropPrompt(prompt string) {
	for i, p := range x.prompts {
		if p == prompt {
			x.prompts = append(x.prompts[:i], x.prompts[i+1:]...)
			return
		}
	}
}

// mintedPair is a record the merge created, in need of audio synthesis.
type mintedPair struct {
	Prompt   string
	Response string
	AudioID  string
}

// merge applies decoded records in order. A prompt already present keeps its
// existing audio identity with the incoming response replacing the old one;
// a wholly new prompt mints a fresh identity regardless of any identifier the
// incoming record carries. Returns the minted records in application order.
func (x *index) merge(records [][]string) []mintedPair {
	var minted []mintedPair
	for _, record := range records {
		prompt, response := record[0], record[1]
		if e, ok := x.entries[prompt]; ok {
			e.response = response
			continue
		}
		id := newAudioID()
		x.put(prompt, response, id, true)
		minted = append(minted, mintedPair{Prompt: prompt, Response: response, AudioID: id})
	}
	return minted
}

// flatten serializes the index: three fields per record, prompt and response
// escaped, audio identifier raw, in prompt order.
func (x *index) flatten() string {
	var sb strings.Builder
	for i, prompt := range x.prompts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		e := x.entries[prompt]
		sb.WriteString(escapeField(prompt))
		sb.WriteByte(',')
		sb.WriteString(escapeField(e.response))
		sb.WriteByte(',')
		sb.WriteString(e.audioID)
	}
	return sb.String()
}

func (x *index) len() int {
	return len(x.prompts)
}
