package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"post_archiver/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Exists reports whether a post with the given (id, service) pair has
// already been archived.
func (s *PostStore) Exists(ctx context.Context, id, service string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1 AND service = $2)",
		id, service,
	)
	return exists, err
}

// Insert writes the post row plus its ordered asset rows. The uniqueness
// constraint on (id, service) turns a concurrent double-insert into a
// no-op rather than a duplicate; asset rows are only written for the
// winning insert. Runs inside the caller's transaction when one is carried
// in ctx.
func (s *PostStore) Insert(ctx context.Context, post *domain.Post) error {
	ex := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO posts (
			id, service, version, title, content, creator_id, post_type,
			published_at, added_at, embed_provider, embed_content_id,
			file_name, file_path
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (id, service) DO NOTHING`

	var embedProvider, embedContentID *string
	if post.Embed != nil {
		p := string(post.Embed.Provider)
		embedProvider = &p
		embedContentID = &post.Embed.ContentID
	}

	var fileName, filePath *string
	if post.File != nil {
		fileName = &post.File.Name
		filePath = &post.File.Path
	}

	res, err := ex.ExecContext(ctx, query,
		post.ID,
		post.Service,
		post.Version,
		post.Title,
		post.Content,
		post.CreatorID,
		post.Type,
		post.PublishedAt,
		post.AddedAt,
		embedProvider,
		embedContentID,
		fileName,
		filePath,
	)
	if err != nil {
		return err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		// Lost a check-then-insert race; the earlier writer owns the record.
		return nil
	}

	for i, att := range post.Attachments {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO post_attachments (post_id, service, position, external_id, name, path)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			post.ID, post.Service, i, att.ID, att.Name, att.Path,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// ListCreators returns the distinct creators present in the archive,
// most recently ingested first.
func (s *PostStore) ListCreators(ctx context.Context) ([]domain.CreatorRef, error) {
	query := `
		SELECT creator_id, version, service
		FROM posts
		GROUP BY creator_id, version, service
		ORDER BY MAX(added_at) DESC`

	var refs []domain.CreatorRef
	err := s.db.SelectContext(ctx, &refs, query)
	return refs, err
}

// GetAttachments returns a post's attachments in insertion order.
func (s *PostStore) GetAttachments(ctx context.Context, postID, service string) ([]domain.Asset, error) {
	query := `
		SELECT external_id, name, path
		FROM post_attachments
		WHERE post_id = $1 AND service = $2
		ORDER BY position`

	var assets []domain.Asset
	err := s.db.SelectContext(ctx, &assets, query, postID, service)
	return assets, err
}
