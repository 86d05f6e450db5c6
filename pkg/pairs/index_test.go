package pairs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// IndexTestSuite tests the in-memory pair index
type IndexTestSuite struct {
	suite.Suite
}

// TestParseIndexThreeFields tests loading fully-formed records
func (s *IndexTestSuite) TestParseIndexThreeFields() {
	idx := parseIndex("a,1,id-a\nb,2,id-b")

	s.Equal(2, idx.len())
	e, ok := idx.get("a")
	s.Require().True(ok)
	s.Equal("1", e.response)
	s.Equal("id-a", e.audioID)
	s.False(e.minted)
}

// TestParseIndexBackfill tests that legacy rows get a speculative identifier
func (s *IndexTestSuite) TestParseIndexBackfill() {
	idx := parseIndex("a,1\nb,2,")

	for _, prompt := range []string{"a", "b"} {
		e, ok := idx.get(prompt)
		s.Require().True(ok, prompt)
		s.NotEmpty(e.audioID)
		s.True(e.minted, "backfilled id must be flagged speculative")
	}
}

// TestParseIndexSkipsShortRows tests that rows with one field are dropped
func (s *IndexTestSuite) TestParseIndexSkipsShortRows() {
	idx := parseIndex("lonely\na,1,id-a")
	s.Equal(1, idx.len())
}

// TestParseIndexDuplicatePromptLastWins tests uniqueness on load
func (s *IndexTestSuite) TestParseIndexDuplicatePromptLastWins() {
	idx := parseIndex("a,1,id-1\na,2,id-2")

	s.Equal(1, idx.len())
	e, _ := idx.get("a")
	s.Equal("2", e.response)
	s.Equal("id-2", e.audioID)
}

// TestUpsertNewPromptMints tests identity minting on first write
func (s *IndexTestSuite) TestUpsertNewPromptMints() {
	idx := newIndex()
	id, minted := idx.upsert("a", "1")

	s.True(minted)
	s.NotEmpty(id)
}

// TestUpsertExistingPromptKeepsIdentity tests sticky audio identity
func (s *IndexTestSuite) TestUpsertExistingPromptKeepsIdentity() {
	idx := newIndex()
	first, _ := idx.upsert("a", "1")
	second, minted := idx.upsert("a", "2")

	s.False(minted)
	s.Equal(first, second)
	e, _ := idx.get("a")
	s.Equal("2", e.response)
}

// TestMergeExistingKeepsIdentity tests the bulk merge rule for known prompts
func (s *IndexTestSuite) TestMergeExistingKeepsIdentity() {
	idx := parseIndex("a,1,id-a")
	minted := idx.merge([][]string{{"a", "2"}, {"b", "3"}})

	s.Require().Len(minted, 1)
	s.Equal("b", minted[0].Prompt)

	a, _ := idx.get("a")
	s.Equal("2", a.response)
	s.Equal("id-a", a.audioID)

	b, _ := idx.get("b")
	s.Equal("3", b.response)
	s.Equal(minted[0].AudioID, b.audioID)
}

// TestMergeIgnoresIncomingIdentityForNewPrompt tests that a new prompt is minted fresh
func (s *IndexTestSuite) TestMergeIgnoresIncomingIdentityForNewPrompt() {
	idx := newIndex()
	minted := idx.merge([][]string{{"a", "1", "imported-id"}})

	s.Require().Len(minted, 1)
	s.NotEqual("imported-id", minted[0].AudioID)
}

// TestMergeDuplicateIncomingPrompt tests last-write-wins within one batch
func (s *IndexTestSuite) TestMergeDuplicateIncomingPrompt() {
	idx := newIndex()
	minted := idx.merge([][]string{{"a", "1"}, {"a", "2"}})

	s.Len(minted, 1, "one identity per distinct prompt")
	e, _ := idx.get("a")
	s.Equal("2", e.response)
}

// TestRename tests identity churn on prompt rename
func (s *IndexTestSuite) TestRename() {
	idx := parseIndex("a,1,id-a\nb,2,id-b")
	newID, retired, ok := idx.rename("a", "a2", "1x")

	s.Require().True(ok)
	s.NotEqual("id-a", newID)
	s.Equal([]string{"id-a"}, retired)

	_, oldExists := idx.get("a")
	s.False(oldExists)

	e, newExists := idx.get("a2")
	s.Require().True(newExists)
	s.Equal("1x", e.response)
	s.Equal(newID, e.audioID)

	// Position is preserved
	s.Equal([]string{"a2", "b"}, idx.prompts)
}

// TestRenameUnknownPrompt tests the no-op path
func (s *IndexTestSuite) TestRenameUnknownPrompt() {
	idx := parseIndex("a,1,id-a")
	_, _, ok := idx.rename("missing", "x", "y")
	s.False(ok)
}

// TestRenameOntoExistingPrompt tests that the displaced identity is retired
func (s *IndexTestSuite) TestRenameOntoExistingPrompt() {
	idx := parseIndex("a,1,id-a\nb,2,id-b")
	_, retired, ok := idx.rename("a", "b", "merged")

	s.Require().True(ok)
	s.ElementsMatch([]string{"id-a", "id-b"}, retired)
	s.Equal(1, idx.len())
}

// TestRemove tests record removal
func (s *IndexTestSuite) TestRemove() {
	idx := parseIndex("a,1,id-a\nb,2,id-b")
	id, ok := idx.remove("a")

	s.Require().True(ok)
	s.Equal("id-a", id)
	s.Equal([]string{"b"}, idx.prompts)

	_, ok = idx.remove("a")
	s.False(ok)
}

// TestFlattenOrderAndShape tests deterministic three-field serialization
func (s *IndexTestSuite) TestFlattenOrderAndShape() {
	idx := parseIndex("b,2,id-b\na,1,id-a")
	idx.upsert("c", "3")

	lines := strings.Split(idx.flatten(), "\n")
	s.Require().Len(lines, 3)
	s.True(strings.HasPrefix(lines[0], "b,2,"))
	s.True(strings.HasPrefix(lines[1], "a,1,"))
	s.True(strings.HasPrefix(lines[2], "c,3,"))
}

// TestFlattenEscapes tests that prompt and response are escaped, identifier raw
func (s *IndexTestSuite) TestFlattenEscapes() {
	idx := newIndex()
	idx.put("x,y", "has \"quotes\"\nand newline", "id-1", false)

	s.Equal("\"x,y\",\"has \"\"quotes\"\"\nand newline\",id-1", idx.flatten())
}

// TestRoundTripMapping tests that decode(serialize(pairs)) preserves the mapping
func (s *IndexTestSuite) TestRoundTripMapping() {
	idx := newIndex()
	idx.upsert("x,y", "has \"quotes\"\nand newline")
	idx.upsert("plain", "value")

	reloaded := parseIndex(idx.flatten())
	s.Equal(2, reloaded.len())

	e, ok := reloaded.get("x,y")
	s.Require().True(ok)
	s.Equal("has \"quotes\"\nand newline", e.response)
	s.False(e.minted, "persisted identifiers must not be re-minted on reload")
}

// TestIndexTestSuite runs the test suite
func TestIndexTestSuite(t *testing.T) {
	suite.Run(t, new(IndexTestSuite))
}
