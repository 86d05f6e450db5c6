package pairs

// DefaultNamespace is the blob key prefix the store uses unless configured
// otherwise.
const DefaultNamespace = "1111"

const (
	indexExt = ".csv"
	audioExt = ".mp3"

	contentTypeCSV   = "text/csv"
	contentTypeAudio = "audio/mpeg"
	contentTypeText  = "text/plain"
)

// indexKey is the blob key holding a bucket's record index.
func indexKey(ns, bucket string) string {
	return ns + "/" + bucket + indexExt
}

// assetPrefix is the blob key prefix under which a bucket's audio assets live.
func assetPrefix(ns, bucket string) string {
	return ns + "/" + bucket + "/"
}

// assetKey is the blob key of one audio asset.
func assetKey(ns, bucket, audioID string) string {
	return assetPrefix(ns, bucket) + audioID + audioExt
}

// defaultKey is the blob key of the default bucket pointer.
func defaultKey(ns string) string {
	return ns + "/.default"
}
