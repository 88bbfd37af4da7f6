package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// stored as one text column
const artistSeparator = ", "

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add ignores plays that are already stored.
func (r *Repo) Add(ctx context.Context, track TrackRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.spotify.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO spotify_play_history (
			track_id, track_name, artists, album, started_at, duration_ms, ms_played, percent_played, skipped
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (track_id, started_at) DO NOTHING`,
		track.TrackID, track.TrackName, strings.Join(track.Artists, artistSeparator), track.Album,
		track.StartedAt, track.DurationMs, track.MsPlayed, track.PercentPlayed, track.Skipped,
	)
	return err
}

// GetPage returns a page of plays, newest first.
func (r *Repo) GetPage(ctx context.Context, page, size int) (_ []TrackRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.spotify.getPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 {
		return nil, fmt.Errorf("page must be greater than 0")
	}
	if size < 1 {
		return nil, fmt.Errorf("size must be greater than 0")
	}

	limit := size
	offset := (page - 1) * size

	rows, err := r.db.Query(ctx, `
		SELECT
		    id, track_id, track_name, artists, album, started_at, duration_ms, ms_played, percent_played, skipped
		FROM spotify_play_history
		ORDER BY started_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var tracks []TrackRecord
	for rows.Next() {
		var (
			track   TrackRecord
			artists string
		)
		if err := rows.Scan(
			&track.ID, &track.TrackID, &track.TrackName, &artists, &track.Album, &track.StartedAt,
			&track.DurationMs, &track.MsPlayed, &track.PercentPlayed, &track.Skipped,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if artists != "" {
			track.Artists = strings.Split(artists, artistSeparator)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tracks, nil
}
