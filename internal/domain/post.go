package domain

import "time"

// PostType mirrors the platform's post type field.
type PostType string

const (
	PostTypeImage   PostType = "image"
	PostTypeArticle PostType = "article"
	PostTypeEmbed   PostType = "embed"
	PostTypeFile    PostType = "file"
)

// BlockType tags one structured unit of a post body.
type BlockType string

const (
	BlockParagraph BlockType = "p"
	BlockImage     BlockType = "image"
	BlockFile      BlockType = "file"
	BlockEmbed     BlockType = "embed"
)

// EmbedProvider is the closed set of providers the normalizer can render.
// Anything else contributes no fragment.
type EmbedProvider string

const (
	ProviderTwitter     EmbedProvider = "twitter"
	ProviderYouTube     EmbedProvider = "youtube"
	ProviderFanbox      EmbedProvider = "fanbox"
	ProviderVimeo       EmbedProvider = "vimeo"
	ProviderGoogleForms EmbedProvider = "google_forms"
	ProviderSoundcloud  EmbedProvider = "soundcloud"
)

// Asset is a downloaded file referenced by a post. Name is derived from the
// source id and extension; Path is the store-relative location including the
// filename actually used on disk.
type Asset struct {
	ID   string `json:"id" db:"external_id"`
	Name string `json:"name" db:"name"`
	Path string `json:"path" db:"path"`
}

// Embed describes an external embed attached to a post.
type Embed struct {
	Provider  EmbedProvider `json:"provider"`
	ContentID string        `json:"content_id"`
}

// Post is one archived post, uniquely identified by (ID, Service).
// Records are created once on first sight and never mutated.
type Post struct {
	ID          string     `json:"id"`
	Version     int        `json:"version"`
	Service     string     `json:"service"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CreatorID   string     `json:"creator_id"`
	Type        PostType   `json:"type"`
	PublishedAt *time.Time `json:"published_at"`
	AddedAt     time.Time  `json:"added_at"`
	Embed       *Embed     `json:"embed,omitempty"`
	File        *Asset     `json:"file,omitempty"`
	Attachments []Asset    `json:"attachments"`
}

// Ban excludes a creator's posts from ingestion. Written by an external
// moderation workflow; read-only here.
type Ban struct {
	CreatorID string `db:"creator_id"`
	Service   string `db:"service"`
}

// CreatorLookup maps a creator id to a resolved display name, scoped by the
// schema version and service of the posts it was resolved for.
type CreatorLookup struct {
	CreatorID string `db:"creator_id"`
	Version   int    `db:"version"`
	Service   string `db:"service"`
	Name      string `db:"name"`
}

// CreatorRef identifies a distinct creator seen in stored posts.
type CreatorRef struct {
	CreatorID string `db:"creator_id"`
	Version   int    `db:"version"`
	Service   string `db:"service"`
}
