package domain

import "time"

// Page is one listing page of the upstream feed.
type Page struct {
	Items   []PostSummary
	NextURL string
}

// PostSummary is one entry from a listing page. A nil Body means the post is
// locked or otherwise inaccessible and carries nothing to archive.
type PostSummary struct {
	ID          string
	Title       string
	CreatorID   string
	Type        PostType
	PublishedAt *time.Time
	Body        *Body
}

// Body is a post body in either of the two supported shapes: flat text/html,
// or a block list with sibling lookup maps. Both can coexist.
type Body struct {
	Text   string
	HTML   string
	Images []FileInfo
	Files  []FileInfo
	Blocks []Block

	ImageMap map[string]FileInfo
	FileMap  map[string]FileInfo
	EmbedMap map[string]EmbedInfo
}

// FileInfo describes one downloadable asset referenced by a body.
type FileInfo struct {
	ID        string
	Name      string
	Extension string
	URL       string
}

// FileName derives the on-disk name hint, preferring the human-readable name
// when the platform supplies one.
func (f FileInfo) FileName() string {
	base := f.Name
	if base == "" {
		base = f.ID
	}
	return base + "." + f.Extension
}

// Block is one structured unit of a body, carrying its type tag and a
// reference into the matching lookup map.
type Block struct {
	Type    BlockType
	Text    string
	ImageID string
	FileID  string
	EmbedID string
}

// EmbedInfo describes an embed referenced by an embed block.
type EmbedInfo struct {
	ID        string
	Provider  EmbedProvider
	ContentID string
}
